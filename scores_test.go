package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"snaker/store"
)

func TestPrintScores(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, filepath.Join(t.TempDir(), "scores.db"), "Ada", store.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	defer st.Close()
	for _, score := range []int{12, 30, 7} {
		require.NoError(t, st.Save(ctx, score))
	}

	var out bytes.Buffer
	require.NoError(t, printScores(ctx, &out, st, 2))

	text := out.String()
	assert.Contains(t, text, "Rank")
	assert.Contains(t, text, "Ada")
	assert.Contains(t, text, "30")
	assert.Contains(t, text, "12")
	assert.NotContains(t, text, "#3")
	assert.Contains(t, text, "3 games")
}

func TestPrintScoresEmpty(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, filepath.Join(t.TempDir(), "scores.db"), "Ada")
	require.NoError(t, err)
	defer st.Close()

	var out bytes.Buffer
	require.NoError(t, printScores(ctx, &out, st, 10))

	assert.Contains(t, out.String(), "No games recorded yet.")
}
