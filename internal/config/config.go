package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ConfigFile = ".bible-refs.yml"
	EnvFile    = ".bible-refs.env"

	EnvLink     = "BIBLE_REFS_LINK"
	EnvMarkdown = "BIBLE_REFS_MARKDOWN"
	EnvConfig   = "BIBLE_REFS_CONFIG"
)

// ReplaceRule is a regular expression replacement applied to the output after
// the references have been rewritten.
type ReplaceRule struct {
	Regex string `yaml:"regex"`
	Rep   string `yaml:"rep"`
}

// Config holds the settings for the bible-refs tool.
type Config struct {
	Link     *bool         `yaml:"link"`
	Markdown bool          `yaml:"markdown"`
	Inline   bool          `yaml:"inline"`
	Replace  []ReplaceRule `yaml:"replace"`
}

// LinkEnabled returns the link setting, which is true unless configured
// otherwise.
func (c *Config) LinkEnabled() bool {
	return c.Link == nil || *c.Link
}

// SetLink sets the link setting.
func (c *Config) SetLink(link bool) {
	c.Link = &link
}

// HomeDir returns the user's home directory or the current directory when it
// cannot be determined.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// DefaultConfigPath returns the configuration file to use when none is given,
// which is named by BIBLE_REFS_CONFIG or else ~/.bible-refs.yml.
func DefaultConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(HomeDir(), ConfigFile)
}

// DefaultEnvPath returns the location of the dotenv file, ~/.bible-refs.env.
func DefaultEnvPath() string {
	return filepath.Join(HomeDir(), EnvFile)
}

// Load reads the YAML configuration at path. A missing file is not an error
// and results in the default configuration.
func Load(path string) (*Config, error) {
	c := &Config{}

	bs, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	} else if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	for i, r := range c.Replace {
		if r.Regex == "" {
			return nil, fmt.Errorf("%s: replace rule %d is missing regex", path, i+1)
		}
	}

	return c, nil
}

// ApplyEnv overrides settings from the dotenv file at envPath and then from
// the process environment. A missing dotenv file is ignored.
func (c *Config) ApplyEnv(envPath string) error {
	env := map[string]string{}
	if envPath != "" {
		fenv, err := godotenv.Read(envPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("unable to read %s: %w", envPath, err)
		}
		for k, v := range fenv {
			env[k] = v
		}
	}

	for _, k := range []string{EnvLink, EnvMarkdown} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}

	if v, ok := env[EnvLink]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLink, err)
		}
		c.SetLink(b)
	}

	if v, ok := env[EnvMarkdown]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMarkdown, err)
		}
		c.Markdown = b
	}

	return nil
}

// LoadAll loads the configuration file and applies the environment on top.
func LoadAll(path, envPath string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := c.ApplyEnv(envPath); err != nil {
		return nil, err
	}

	return c, nil
}
