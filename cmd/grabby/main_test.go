package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittubose/Grabby-Hand-rat-killer/audio"
	"github.com/mittubose/Grabby-Hand-rat-killer/config"
)

func TestRunReturnsSessionError(t *testing.T) {
	scr := simScreen(t, 80, 30)
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Difficulty = "nightmare"

	cues := audio.NewCuePlayer()
	t.Cleanup(cues.Cleanup)

	err = run(scr, cfg, cues)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session")
}

func TestLoadConfigAppliesDifficultyFlag(t *testing.T) {
	prev := *difficultyFlag
	t.Cleanup(func() { *difficultyFlag = prev })

	*difficultyFlag = "hard"
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "hard", cfg.Difficulty)
}
