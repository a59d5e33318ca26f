// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config reads the intcode tool settings from a TOML file.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var ErrColor = errors.New(f("start color must be black or white"))

// ErrUnknownKey is returned when the file contains a key not in Config.
type ErrUnknownKey string

func (err ErrUnknownKey) Error() string {
	return f("unknown configuration key '%v'", string(err))
}

// Amplifier settings.
type Amplifier struct {
	Phases   []int64 `toml:"phases"`
	Feedback bool    `toml:"feedback"`
}

// Robot settings.
type Robot struct {
	StartColor string `toml:"start_color"`
}

// Arcade settings.
type Arcade struct {
	FreePlay bool `toml:"free_play"`
	Screen   bool `toml:"screen"`
}

// Gravity settings.
type Gravity struct {
	Target int64 `toml:"target"`
}

// Config is the complete tool configuration.
type Config struct {
	Program string  `toml:"program"`
	Verbose bool    `toml:"verbose"`
	Inputs  []int64 `toml:"inputs"`

	Amplifier Amplifier `toml:"amplifier"`
	Robot     Robot     `toml:"robot"`
	Arcade    Arcade    `toml:"arcade"`
	Gravity   Gravity   `toml:"gravity"`
}

// Default returns the configuration used when no file is given.
func Default() (cfg *Config) {
	cfg = &Config{
		Amplifier: Amplifier{
			Phases: []int64{0, 1, 2, 3, 4},
		},
		Robot: Robot{
			StartColor: "black",
		},
		Arcade: Arcade{
			FreePlay: true,
		},
		Gravity: Gravity{
			Target: 19690720,
		},
	}

	return
}

// Load reads a TOML file over the defaults.
func Load(fs afero.Fs, path string) (cfg *Config, err error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return
	}

	cfg, err = Parse(string(data))
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		cfg = nil
	}

	return
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (cfg *Config, err error) {
	cfg = Default()

	meta, err := toml.Decode(text, cfg)
	if err != nil {
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		err = ErrUnknownKey(undecoded[0].String())
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks settings the decoder cannot.
func (cfg *Config) Validate() (err error) {
	switch cfg.Robot.StartColor {
	case "black", "white":
	default:
		err = ErrColor
	}

	return
}
