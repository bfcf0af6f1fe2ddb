package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	f := setupLogging(false)
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, log.Writer())

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no log directory without -debug")
}

func TestSetupLoggingWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()
	defer log.SetOutput(io.Discard)

	assert.NotEqual(t, os.Stdout, log.Writer())
	assert.NotEqual(t, os.Stderr, log.Writer())

	log.Println("boss spawned")
	info, err := os.Stat(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(logDir, 0o755))
	path := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(path, make([]byte, maxLogSize+1), 0o644))

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	assert.Equal(t, 1, rotated)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}
