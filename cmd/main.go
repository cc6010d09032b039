package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/nevisdale/snestic/internal/config"
	"github.com/nevisdale/snestic/internal/snes"
	"github.com/nevisdale/snestic/internal/ui"
	"github.com/pkg/profile"
)

var (
	configPath   string
	romPath      string
	statePath    string
	frames       int
	scale        int
	headless     bool
	pal          bool
	quiet        bool
	profileMode  string
	loadStateArg bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "TOML config file")
	flag.StringVar(&romPath, "rom", "", "ROM image (.sfc/.smc)")
	flag.StringVar(&statePath, "state", "", "save state file")
	flag.IntVar(&frames, "frames", 0, "frames to run headless, 0 runs until interrupted")
	flag.IntVar(&scale, "scale", 0, "window scale 1..4")
	flag.BoolVar(&headless, "headless", false, "run without a window")
	flag.BoolVar(&pal, "pal", false, "emulate a PAL console")
	flag.BoolVar(&quiet, "quiet", false, "don't log undefined opcodes")
	flag.StringVar(&profileMode, "profile", "", "write a cpu or mem profile")
	flag.BoolVar(&loadStateArg, "load", false, "load the save state before running")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: snestic [options] [rom]\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if err := run("."); err != nil {
		log.Fatalf("%s\n", err)
	}
}

// run is the whole program. Profiles are written to profileDir before it
// returns, also on failure.
func run(profileDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("couldn't load the config: %w", err)
	}

	switch cfg.Debug.Profile {
	case config.ProfileCPU:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.NoShutdownHook).Stop()
	case config.ProfileMem:
		defer profile.Start(profile.MemProfile, profile.ProfilePath(profileDir), profile.NoShutdownHook).Stop()
	}

	cart, err := snes.NewCartFromFile(cfg.Paths.ROM)
	if err != nil {
		return fmt.Errorf("couldn't load the rom: %w", err)
	}
	log.Printf("loaded %q (%s)\n", cart.Title(), cart.Mapper())

	console := snes.NewConsole(cart, cfg)
	if loadStateArg && cfg.Paths.State != "" {
		if err := console.LoadStateFile(cfg.Paths.State); err != nil {
			return fmt.Errorf("couldn't load the state: %w", err)
		}
	}

	if cfg.Debug.Window {
		if err := ui.RunUI(ui.New(console, cfg.Video.Scale, cfg.Paths.State)); err != nil {
			return fmt.Errorf("ui: %w", err)
		}
		return nil
	}

	return runHeadless(console, cfg)
}

// loadConfig applies the config file and then the flags that were set.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rom":
			cfg.Paths.ROM = romPath
		case "state":
			cfg.Paths.State = statePath
		case "frames":
			cfg.Emulation.Frames = frames
		case "scale":
			cfg.Video.Scale = scale
		case "headless":
			cfg.Debug.Window = !headless
		case "pal":
			if pal {
				cfg.Emulation.Region = config.RegionPAL
			}
		case "quiet":
			cfg.Debug.LogUndefined = !quiet
		case "profile":
			cfg.Debug.Profile = profileMode
		}
	})
	if flag.NArg() > 0 {
		cfg.Paths.ROM = flag.Arg(0)
	}
	if cfg.Paths.ROM == "" {
		return cfg, fmt.Errorf("no rom given")
	}
	return cfg, cfg.Validate()
}

func runHeadless(console *snes.Console, cfg config.Config) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	defer signal.Stop(stop)

loop:
	for n := 0; cfg.Emulation.Frames == 0 || n < cfg.Emulation.Frames; n++ {
		select {
		case <-stop:
			log.Println("interrupted")
			break loop
		default:
			console.RunFrame()
		}
	}

	info := console.DebugInfo()
	log.Printf("frames: %d cycles: %d %s\n", info.Frame, info.Cycles, info.CPU)

	if cfg.Paths.State != "" {
		if err := console.SaveStateFile(cfg.Paths.State); err != nil {
			return fmt.Errorf("couldn't save the state: %w", err)
		}
	}
	return nil
}
