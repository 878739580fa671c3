package db

import (
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsDefineSchema(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	r, ident, err := src.ReadUp(first)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "init", ident)

	raw, err := io.ReadAll(r)
	require.NoError(t, err)
	up := string(raw)
	for _, table := range []string{"customers", "products", "sales"} {
		assert.Contains(t, up, "CREATE TABLE IF NOT EXISTS "+table)
	}
	assert.Contains(t, up, "customers_email_key UNIQUE (email)")
	assert.Contains(t, up, "CREATE TYPE sale_status AS ENUM ('pending', 'completed', 'cancelled')")
}

func TestEmbeddedMigrationsAreReversible(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	version, err := src.First()
	for err == nil {
		down, _, readErr := src.ReadDown(version)
		require.NoError(t, readErr, "migration %d has no down file", version)
		_ = down.Close()
		version, err = src.Next(version)
	}
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
