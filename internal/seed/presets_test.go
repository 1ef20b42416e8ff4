package seed

import "testing"

func TestLoadPresets(t *testing.T) {
	t.Parallel()

	presets, err := LoadPresets()
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}

	for _, name := range []string{"tiny", "demo", "mega"} {
		preset, ok := presets[name]
		if !ok {
			t.Fatalf("preset %q missing", name)
		}
		if preset.Users <= 0 || preset.Moodboards <= 0 {
			t.Fatalf("preset %q has non-positive counts: %+v", name, preset)
		}
	}
}

func TestApplyPreset_UnknownName(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seeder := NewSeeder(db, Options{SkipBcrypt: true})

	if err := seeder.ApplyPreset("nope"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestApplyPreset_Tiny(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	seeder := NewSeeder(db, Options{SkipBcrypt: true})

	if err := seeder.ApplyPreset("tiny"); err != nil {
		t.Fatalf("apply tiny preset: %v", err)
	}
}
