package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var count int
	err = database.QueryRow("SELECT COUNT(*) FROM state_blobs").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running migrations must not fail or wipe data.
	_, err = database.Exec(`INSERT INTO state_blobs (key, value, updated_at) VALUES ('k', 'v', 'now')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	var value string
	err = database.QueryRow("SELECT value FROM state_blobs WHERE key = 'k'").Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}
