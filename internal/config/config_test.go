package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Default(t *testing.T) {
	cfg := Default()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, RegionNTSC, cfg.Emulation.Region)
	assert.Equal(t, 2, cfg.Video.Scale)
	assert.True(t, cfg.Debug.LogUndefined)
	assert.False(t, cfg.PAL())
}

func Test_Parse(t *testing.T) {
	t.Run("missing keys keep defaults", func(t *testing.T) {
		cfg, err := Parse(`
[emulation]
region = "pal"
frames = 120
`)
		require.NoError(t, err)
		assert.True(t, cfg.PAL())
		assert.Equal(t, 120, cfg.Emulation.Frames)
		assert.Equal(t, 2, cfg.Video.Scale)
		assert.True(t, cfg.Debug.LogUndefined)
	})

	t.Run("all sections", func(t *testing.T) {
		cfg, err := Parse(`
[video]
scale = 3

[debug]
log_undefined = false
window = false
profile = "cpu"

[paths]
rom = "game.sfc"
state = "game.state"
`)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Video.Scale)
		assert.False(t, cfg.Debug.LogUndefined)
		assert.False(t, cfg.Debug.Window)
		assert.Equal(t, ProfileCPU, cfg.Debug.Profile)
		assert.Equal(t, "game.sfc", cfg.Paths.ROM)
		assert.Equal(t, "game.state", cfg.Paths.State)
	})

	t.Run("invalid values", func(t *testing.T) {
		testDo := func(t *testing.T, doc string, expErr error) {
			_, err := Parse(doc)
			assert.ErrorIs(t, err, expErr)
		}

		testDo(t, "[video]\nscale = 0\n", ErrInvalidScale)
		testDo(t, "[video]\nscale = 5\n", ErrInvalidScale)
		testDo(t, "[emulation]\nregion = \"secam\"\n", ErrInvalidRegion)
		testDo(t, "[emulation]\nframes = -1\n", ErrInvalidFrames)
		testDo(t, "[debug]\nprofile = \"trace\"\n", ErrInvalidProfile)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := Parse("[video\nscale = 1")
		assert.Error(t, err)
	})
}

func Test_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snestic.toml")
	require.NoError(t, os.WriteFile(path, []byte("[video]\nscale = 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Video.Scale)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
