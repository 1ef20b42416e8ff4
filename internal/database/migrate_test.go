package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredMigrations(t *testing.T) {
	ms := GetMigrations()
	require.NotEmpty(t, ms)

	t.Run("ordered by version", func(t *testing.T) {
		for i := 1; i < len(ms); i++ {
			assert.Greater(t, ms[i].Version, ms[i-1].Version)
		}
	})

	t.Run("every migration has both scripts", func(t *testing.T) {
		for _, m := range ms {
			assert.NotEmpty(t, strings.TrimSpace(m.UpScript), m.String())
			assert.NotEmpty(t, strings.TrimSpace(m.DownScript), m.String())
		}
	})

	t.Run("lookup by version", func(t *testing.T) {
		first := GetMigrationByVersion(ms[0].Version)
		require.NotNil(t, first)
		assert.Equal(t, ms[0].Name, first.Name)

		assert.Nil(t, GetMigrationByVersion(999999))
	})
}

func TestPersistentModelsRegistry(t *testing.T) {
	// Every domain entity must be schema-managed; a missing entry here means
	// AutoMigrate silently skips a table.
	assert.Len(t, PersistentModels(), 8)
}
