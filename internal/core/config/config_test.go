package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse(writeYAML(t, "app:\n  name: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", c.App.Name)
	assert.Equal(t, 8080, c.App.HTTP.Port)
	assert.Equal(t, "memory", c.Store.Backend)
	assert.True(t, c.Store.Seed)
	assert.Equal(t, "ecowaste:", c.Redis.KeyPrefix)
	assert.Empty(t, c.Redis.Addr)
}

func TestParseFileAndEnv(t *testing.T) {
	p := writeYAML(t, `
store:
  backend: GORM
  seed: false
db:
  driver: postgres
  dsn: postgres://file
redis:
  addr: 127.0.0.1:6379
`)
	t.Setenv("APP_DB_DSN", "postgres://env")

	c, err := Parse(p)
	require.NoError(t, err)
	assert.Equal(t, "gorm", c.Store.Backend)
	assert.False(t, c.Store.Seed)
	assert.Equal(t, "postgres", c.DB.Driver)
	assert.Equal(t, "postgres://env", c.DB.DSN)
	assert.Equal(t, "127.0.0.1:6379", c.Redis.Addr)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
