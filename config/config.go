// Package config loads the review settings for one test block from YAML.
package config

import(
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ft "github.com/skypies/flighttest"
)

// Config is the top level of a block's config file, e.g.
//
//	block: BlockA
//	folders:
//	  states: Block A/States
//	  maneuvers: Block A/ManeuverLog
//	  controls: Block A/ControlPos
//	  output: Reports
//	calibration:
//	  cyclic_arm_mm: 243
//	logging:
//	  level: info
//	  dir: logs
//
// Relative folders are resolved against the directory holding the config file.
type Config struct {
	Block        string          `yaml:"block"`
	Folders      FoldersConfig   `yaml:"folders"`
	Calibration  ft.Calibration  `yaml:"calibration"`
	Smoothing    int             `yaml:"smoothing_window"`
	Pilots       []string        `yaml:"pilots"`
	Maneuvers    []string        `yaml:"maneuvers"`
	Logging      LoggingConfig   `yaml:"logging"`
}

type FoldersConfig struct {
	States     string `yaml:"states"`
	Maneuvers  string `yaml:"maneuvers"`
	Controls   string `yaml:"controls"`
	Output     string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Dir    string `yaml:"dir"`
}

func DefaultConfig() Config {
	return Config{
		Block: "BlockA",
		Folders: FoldersConfig{
			States:    "States",
			Maneuvers: "ManeuverLog",
			Controls:  "ControlPos",
			Output:    "Reports",
		},
		Calibration: ft.DefaultCalibration(),
		Smoothing: 1,
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults; fields the file omits keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.resolve(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config)resolve(base string) {
	for _,p := range []*string{&c.Folders.States, &c.Folders.Maneuvers, &c.Folders.Controls,
		&c.Folders.Output, &c.Logging.Dir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

func (c Config)Validate() error {
	if err := c.Calibration.Validate(); err != nil {
		return err
	}
	if c.Smoothing < 1 {
		return fmt.Errorf("smoothing_window must be at least 1, not %d", c.Smoothing)
	}
	return nil
}

// Overrides holds command line values; empty strings and zeros leave the config alone.
type Overrides struct {
	States, Maneuvers, Controls, Output string
	Block string
	Pilots []string
	LogDir, LogLevel string
	CyclicArmMM float64
	Smoothing int
}

func (c *Config)Apply(o Overrides) {
	set := func(dst *string, v string) { if v != "" { *dst = v } }
	set(&c.Folders.States, o.States)
	set(&c.Folders.Maneuvers, o.Maneuvers)
	set(&c.Folders.Controls, o.Controls)
	set(&c.Folders.Output, o.Output)
	set(&c.Block, o.Block)
	set(&c.Logging.Dir, o.LogDir)
	set(&c.Logging.Level, o.LogLevel)
	if len(o.Pilots) > 0 { c.Pilots = o.Pilots }
	if o.CyclicArmMM > 0 { c.Calibration.CyclicArmMM = o.CyclicArmMM }
	if o.Smoothing > 0 { c.Smoothing = o.Smoothing }
}
