package sfx

import (
	"os"

	"github.com/gnolang/sfxtree/internal/alphabet"
	"github.com/gnolang/sfxtree/internal/tree"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no configuration file is given explicitly.
const DefaultConfigPath = ".sfxtree.yaml"

// Config represents the overall configuration of the engine.
type Config struct {
	Name     string `yaml:"name"`
	Alphabet string `yaml:"alphabet"`
	// Sentinel is the single byte displayed for string terminators.
	Sentinel string `yaml:"sentinel"`
	// Construction is "linked" or "naive".
	Construction string    `yaml:"construction"`
	Log          LogConfig `yaml:"log"`
}

// LogConfig controls the command line logger.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Name:         "sfxtree",
		Alphabet:     "dna",
		Sentinel:     string(tree.DefaultSentinel),
		Construction: tree.ModeLinked.String(),
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path,
// or a missing DefaultConfigPath, yields the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) && path == DefaultConfigPath {
		return config, nil
	}
	if err != nil {
		return config, errors.Wrap(err, "open configuration")
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, errors.Wrapf(err, "decode %s", path)
	}
	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "invalid configuration %s", path)
	}
	return config, nil
}

// WriteConfig stores config as YAML at path.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "encode configuration")
	}
	if err := os.WriteFile(path, d, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Validate checks the fields the engine depends on.
func (c Config) Validate() error {
	if _, err := c.mode(); err != nil {
		return err
	}
	sentinel, err := c.sentinel()
	if err != nil {
		return err
	}
	if _, err := alphabet.Parse(c.Alphabet, sentinel); err != nil {
		return err
	}
	return nil
}

func (c Config) sentinel() (byte, error) {
	if len(c.Sentinel) != 1 || c.Sentinel[0] < 0x21 || c.Sentinel[0] > 0x7e {
		return 0, errors.Errorf("sentinel %q must be one printable ASCII byte", c.Sentinel)
	}
	return c.Sentinel[0], nil
}

func (c Config) mode() (tree.Mode, error) {
	switch c.Construction {
	case "", tree.ModeLinked.String():
		return tree.ModeLinked, nil
	case tree.ModeNaive.String():
		return tree.ModeNaive, nil
	default:
		return 0, errors.Errorf("unknown construction %q", c.Construction)
	}
}
