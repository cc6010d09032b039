package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	RegionNTSC = "ntsc"
	RegionPAL  = "pal"

	ProfileNone = ""
	ProfileCPU  = "cpu"
	ProfileMem  = "mem"

	minScale = 1
	maxScale = 4
)

var (
	ErrInvalidScale   = errors.New("video scale must be between 1 and 4")
	ErrInvalidRegion  = errors.New("region must be ntsc or pal")
	ErrInvalidProfile = errors.New("profile must be empty, cpu or mem")
	ErrInvalidFrames  = errors.New("frames must not be negative")
)

type Config struct {
	Emulation Emulation `toml:"emulation"`
	Video     Video     `toml:"video"`
	Debug     Debug     `toml:"debug"`
	Paths     Paths     `toml:"paths"`
}

type Emulation struct {
	Region string `toml:"region"`
	// Frames limits a headless run, 0 runs until interrupted.
	Frames int `toml:"frames"`
}

type Video struct {
	Scale int `toml:"scale"`
}

type Debug struct {
	LogUndefined bool   `toml:"log_undefined"`
	Window       bool   `toml:"window"`
	Profile      string `toml:"profile"`
}

type Paths struct {
	ROM   string `toml:"rom"`
	State string `toml:"state"`
}

func Default() Config {
	return Config{
		Emulation: Emulation{Region: RegionNTSC},
		Video:     Video{Scale: 2},
		Debug:     Debug{LogUndefined: true, Window: true},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("couldn't decode the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse is Load for an in-memory document.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("couldn't decode the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Video.Scale < minScale || c.Video.Scale > maxScale {
		return fmt.Errorf("%w: %d", ErrInvalidScale, c.Video.Scale)
	}
	switch c.Emulation.Region {
	case RegionNTSC, RegionPAL:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRegion, c.Emulation.Region)
	}
	switch c.Debug.Profile {
	case ProfileNone, ProfileCPU, ProfileMem:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidProfile, c.Debug.Profile)
	}
	if c.Emulation.Frames < 0 {
		return ErrInvalidFrames
	}
	return nil
}

func (c Config) PAL() bool {
	return c.Emulation.Region == RegionPAL
}
