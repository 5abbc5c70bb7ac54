package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/engine"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/version"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/logger"
)

func main() {
	// 1. Configuration: environment first, flags override it.
	cfg, err := engine.NewConfig()
	if err != nil {
		logger.Log.Fatal("Failed to read config: ", err)
	}

	var survivors string
	flag.StringVar(&cfg.Script, "script", cfg.Script, "Path to a JSON-lines command script (empty for stdin)")
	flag.StringVar(&survivors, "survivors", strings.Join(cfg.Survivors, ","), "Comma separated survivors to join before the script")
	flag.Parse()
	cfg.Survivors = strings.Split(survivors, ",")

	logger.Configure(cfg.Log, os.Stderr)
	logger.Log.Info("Starting Zombicide...")
	logger.Log.Info(version.Banner())

	// 2. Game with its roster
	game := engine.NewGame()
	service := engine.NewService(game)
	service.Join(cfg.Survivors...)
	logger.Log.Infof("Game %s ready with %d survivor(s)", game.ID(), len(game.Survivors()))

	// 3. Script
	var script io.Reader = os.Stdin
	if cfg.Script != "" {
		f, err := os.Open(cfg.Script)
		if err != nil {
			logger.Log.Fatal("Failed to open script: ", err)
		}
		defer f.Close()
		script = f
	}

	if err := service.Run(script, os.Stdout); err != nil {
		logger.Log.Error("Script aborted: ", err)
	}

	// 4. Final state
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(engine.BuildGameView(game)); err != nil {
		logger.Log.Error("Failed to encode game state: ", err)
	}
}
