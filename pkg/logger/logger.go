package logger

import (
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. It is usable before Init with
// logrus defaults, so library code never has to check for nil.
var Log = logrus.New()

// Config controls the logger.
type Config struct {
	// Level - logrus level name: "debug", "info", "warn"...
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format - "json" for machines, anything else for humans.
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Init configures Log from the environment.
// It should be called once at startup (main.go, TestMain).
func Init() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		cfg = Config{Level: "info", Format: "text"}
	}
	Configure(cfg, os.Stdout)
}

// Configure applies cfg to Log and sends output to w.
func Configure(cfg Config, w io.Writer) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(w)
}
