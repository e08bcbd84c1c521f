package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// DataFile is used by `report` when no file argument is given.
	DataFile string `mapstructure:"data_file" yaml:"data_file"`
	// Locale selects console labels: ru | en.
	Locale string `mapstructure:"locale" yaml:"locale"`
	// Format selects report output: text | json | yaml.
	Format string `mapstructure:"format" yaml:"format"`
	// Delimiter is one of "," ";" "tab"; empty means pick from the file extension.
	Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
	AllowBlank bool   `mapstructure:"allow_blank" yaml:"allow_blank"`
}

// Dir returns the directory holding config.yaml (~/.housestat).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".housestat"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.housestat/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("HOUSESTAT")
	v.AutomaticEnv()

	v.SetDefault("data_file", "housing_data.csv")
	v.SetDefault("locale", "ru")
	v.SetDefault("format", "text")
	v.SetDefault("delimiter", "")
	v.SetDefault("allow_blank", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// Missing config files are fine; malformed ones are not.
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
