// Command underwell runs the pit defense simulation in a terminal, or headless for a fixed number of ticks
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/manifest"
	"github.com/lixenwraith/underwell/persistence"
)

var (
	configFlag   = flag.String("config", "", "TOML config file")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/underwell.log")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal and print a summary")
	ticksFlag    = flag.Int("ticks", 3600, "Ticks to simulate in headless mode")
	dumpFlag     = flag.String("dump", "", "Write a msgpack snapshot after a headless run")
	seedFlag     = flag.Int64("seed", 0, "RNG seed, zero picks one")
	scoresFlag   = flag.String("scores", "", "Score file path, overrides the config")
	muteFlag     = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "underwell: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	scores, err := openScores(cfg.ScoreFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "underwell: %v\n", err)
		os.Exit(1)
	}

	world := manifest.NewGame(cfg, scores)
	world.Subscribe(logEvent)
	log.Printf("world %.0fx%.0f, best %.1f, systems %v", cfg.Width, cfg.Height, world.High, manifest.ActiveSystems())

	if *headlessFlag {
		os.Exit(runHeadless(world, *ticksFlag, *dumpFlag, os.Stdout))
	}

	if err := runTerminal(world); err != nil {
		fmt.Fprintf(os.Stderr, "underwell: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file, then applies explicitly set flags
func loadConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = engine.LoadConfig(*configFlag); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "scores":
			cfg.ScoreFile = *scoresFlag
		case "mute":
			cfg.Audio = cfg.Audio && !*muteFlag
		}
	})

	return cfg, cfg.Validate()
}

// openScores returns a nil keeper when persistence is disabled, the world then keeps scores in memory
func openScores(path string) (engine.ScoreKeeper, error) {
	if path == "" {
		return nil, nil
	}
	store, err := persistence.Open(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}
