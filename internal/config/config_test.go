package config

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "class2swagger.yaml")
	assert.NoError(t, os.WriteFile(configPath, []byte(`
version: 1
definitions:
  - path: definitions/*.scala
migrations:
  - path: migrations/*.sql
output:
  path: generated
  format: yaml
package:
  path: models/api
`), 0600))

	cfg, err := Read(configPath)
	assert.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, []Definition{{Path: "definitions/*.scala"}}, cfg.Definitions)
	assert.Equal(t, []Migration{{Path: "migrations/*.sql"}}, cfg.Migrations)
	assert.Equal(t, "generated", cfg.Output.Path)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "models/api", cfg.Package.Path)
}

func TestReadDefaultOutputPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "class2swagger.yaml")
	assert.NoError(t, os.WriteFile(configPath, []byte(`
version: 1
definitions:
  - path: "*.scala"
`), 0600))

	cfg, err := Read(configPath)
	assert.NoError(t, err)
	assert.Equal(t, "output", cfg.Output.Path)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestReadInvalidYaml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "class2swagger.yaml")
	assert.NoError(t, os.WriteFile(configPath, []byte("version: [oops"), 0600))

	_, err := Read(configPath)
	assert.ErrorContains(t, err, "failed to unmarshal config file")
}
