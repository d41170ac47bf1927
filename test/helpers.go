package test

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func getWd(t *testing.T, folder string) string {
	wd, err := os.Getwd()
	assert.NoError(t, err, "failed to get working directory")
	return filepath.Join(wd, folder)
}

func readOutput(t *testing.T, workingDir string, fileName string) string {
	data, err := os.ReadFile(filepath.Join(workingDir, "output", fileName))
	assert.NoError(t, err)
	return string(data)
}
