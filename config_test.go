package nurikabe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 8, cfg.MaxRemaining)
	assert.Equal(t, 4096, cfg.MaxSolutions)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nurikabe.yml")
	assert.NoError(t, os.WriteFile(path, []byte("maxRemaining: 12\n"), 0o644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxRemaining)
	assert.Equal(t, 4096, cfg.MaxSolutions)
}

func TestLoadConfigRejectsNonPositive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nurikabe.yml")
	assert.NoError(t, os.WriteFile(path, []byte("maxSolutions: 0\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/no/such/file.yml")
	assert.Error(t, err)
}
