package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "test_user123", false},
		{"Valid With Hyphen", "mood-duck", false},
		{"Too Short", "tu", true},
		{"Too Long", strings.Repeat("a", 33), true},
		{"Uppercase", "TestUser", true},
		{"Spaces", "test user", true},
		{"Cyrillic", "утка", true},
		{"Exactly Min Length", "abc", false},
		{"Exactly Max Length", strings.Repeat("a", 32), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "duck@example.com", false},
		{"Valid Subdomain", "duck@mail.example.co.uk", false},
		{"Missing At", "duckexample.com", true},
		{"Missing Domain", "duck@", true},
		{"Missing TLD", "duck@example", true},
		{"Whitespace", "du ck@example.com", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "correct-horse", false},
		{"Exactly Min Length", "12345678", false},
		{"Exactly Max Length", strings.Repeat("x", 128), false},
		{"Too Short", "1234567", true},
		{"Too Long", strings.Repeat("x", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
