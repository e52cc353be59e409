package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsInitErrorInsteadOfExiting(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	err := run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize app")
}
