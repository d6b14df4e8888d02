package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/session"
)

var ErrGridTooLarge = errors.New("grid dimensions must not exceed 255")

type Config struct {
	LogLevel string `yaml:"log-level" env:"MINEFIELD_LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	Width    uint   `yaml:"width" env:"MINEFIELD_WIDTH" env-default:"9"`
	Height   uint   `yaml:"height" env:"MINEFIELD_HEIGHT" env-default:"9"`
	Mines    uint   `yaml:"mines" env:"MINEFIELD_MINES" env-default:"10"`
	Seed     int64  `yaml:"seed" env:"MINEFIELD_SEED" env-default:"0"`
	Director string `yaml:"director" env:"MINEFIELD_DIRECTOR" env-default:""`
}

// Load reads the YAML file at path, if any, then the environment
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return config, nil
}

// MustLoad - load all configurations, panicking on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (that *Game) Options() (session.Options, error) {
	if that.Width > 255 || that.Height > 255 {
		return session.Options{}, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, that.Width, that.Height)
	}

	options := session.Options{
		Width:    uint8(that.Width),
		Height:   uint8(that.Height),
		NumMines: that.Mines,
		Seed:     that.Seed,
	}
	return options, options.Validate()
}

// Logger builds a text logger writing to out at the configured level
func (that *Config) Logger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(that.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger, nil
}
