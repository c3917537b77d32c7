package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string `env:"BALLOT_LISTEN_ADDR" envDefault:":3000"`
	Source     string `env:"BALLOT_SOURCE" envDefault:"ballots.html"`

	ChromeURL string `env:"BALLOT_CHROME_URL"`
	ChromeBin string `env:"BALLOT_CHROME_BIN"`
	Headless  bool   `env:"BALLOT_CHROME_HEADLESS" envDefault:"true"`

	PageBreak string  `env:"BALLOT_PDF_PAGEBREAK" envDefault:"avoid-all"`
	MarginMM  float64 `env:"BALLOT_PDF_MARGIN_MM" envDefault:"5"`

	LiteralStatements   bool `env:"BALLOT_LITERAL_STATEMENTS"`
	SequentialWitnesses bool `env:"BALLOT_SEQUENTIAL_WITNESSES"`

	Debug bool `env:"BALLOT_DEBUG"`
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
