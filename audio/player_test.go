package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"snaker/config"
	"snaker/game"
)

var _ game.AudioSink = (*Player)(nil)
var _ game.AudioSink = (*Silent)(nil)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestSweepLengthAndRange(t *testing.T) {
	s := newSweep(440, 880, 150*time.Millisecond, 0.3, sampleRate)

	samples := drain(t, s)

	assert.Len(t, samples, sampleRate.N(150*time.Millisecond))
	for i, v := range samples {
		require.LessOrEqual(t, v[0], 0.3, "sample %d", i)
		require.GreaterOrEqual(t, v[0], -0.3, "sample %d", i)
		require.Equal(t, v[0], v[1])
	}
	assert.NoError(t, s.Err())
}

func TestChordStaysInRange(t *testing.T) {
	samples := drain(t, newChord(500*time.Millisecond, sampleRate))

	assert.Len(t, samples, sampleRate.N(500*time.Millisecond))
	for _, v := range samples {
		require.LessOrEqual(t, v[0], 1.0)
		require.GreaterOrEqual(t, v[0], -1.0)
	}
}

func TestLoadFallsBackToTones(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Directory = filepath.Join(t.TempDir(), "sounds")

	p := Load(cfg, zaptest.NewLogger(t))

	for _, s := range []game.Sound{game.SoundEat, game.SoundDeath, game.SoundButton, game.SoundBackground} {
		require.Contains(t, p.buffers, s)
		assert.Positive(t, p.buffers[s].Len(), "sound %s", s)
	}
	assert.Equal(t, sampleRate.N(500*time.Millisecond), p.buffers[game.SoundDeath].Len())
}

func TestLoadDecodesWav(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "eat.wav"))
	require.NoError(t, err)
	tone := newSweep(440, 440, 50*time.Millisecond, 0.5, sampleRate)
	require.NoError(t, wav.Encode(f, tone, format))
	require.NoError(t, f.Close())

	cfg := config.Default().Audio
	cfg.Directory = dir
	p := Load(cfg, zaptest.NewLogger(t))

	assert.Equal(t, sampleRate.N(50*time.Millisecond), p.buffers[game.SoundEat].Len())
}

func TestLoadBufferReportsAsset(t *testing.T) {
	dir := t.TempDir()
	_, err := loadBuffer(filepath.Join(dir, "missing.wav"))
	assert.ErrorIs(t, err, ErrAsset)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.wav")
	require.NoError(t, os.WriteFile(bad, []byte("not a wav file"), 0644))
	_, err = loadBuffer(bad)
	assert.ErrorIs(t, err, ErrAsset)
}

func TestPlayerWithoutDeviceIsSilent(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Directory = t.TempDir()
	p := Load(cfg, zaptest.NewLogger(t))

	p.Play(game.SoundEat)
	p.PlayBackground()
	p.StopBackground()

	assert.Nil(t, p.music)
	assert.True(t, p.MusicEnabled())
	assert.False(t, p.ToggleBackground())
	assert.False(t, p.MusicEnabled())
	assert.True(t, p.ToggleBackground())
	p.Close()
}

func TestSilentToggle(t *testing.T) {
	s := &Silent{}

	assert.False(t, s.ToggleBackground())
	assert.True(t, s.ToggleBackground())
}
