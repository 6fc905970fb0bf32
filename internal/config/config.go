// Package config holds the settings of the calc command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config is the command's configuration.
type Config struct {
	// Postfix prints expressions in postfix order instead of evaluating them.
	Postfix bool `yaml:"postfix"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
	// Prompt is printed before each line in interactive mode.
	Prompt string `yaml:"prompt"`
	// Quit lists the lines that end interactive mode.
	Quit []string `yaml:"quit"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Prompt: ">>> ",
		Quit:   []string{"Q", "q"},
	}
}

// Load reads a YAML configuration file over the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, nil
}

// Set assigns a single setting by its YAML name. Quit takes a
// whitespace-separated list.
func (c *Config) Set(key, val string) error {
	var err error
	switch key {
	case "postfix":
		c.Postfix, err = strconv.ParseBool(val)
	case "debug":
		c.Debug, err = strconv.ParseBool(val)
	case "prompt":
		c.Prompt = val
	case "quit":
		c.Quit = strings.Fields(val)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

// Apply sets each of a comma-separated list of key=value pairs.
func (c *Config) Apply(pairs string) error {
	kv := ParseKeyValuePairs(pairs)
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := c.Set(k, kv[k]); err != nil {
			return err
		}
	}
	return nil
}

// Quits reports whether line ends interactive mode.
func (c *Config) Quits(line string) bool {
	return slices.Contains(c.Quit, line)
}

// ParseKeyValue parses a single key=value pair and returns the key and value.
// If no value is provided, the value will be empty.
func ParseKeyValue(input string) (key, val string) {
	key, val, _ = strings.Cut(input, "=")
	return
}

// ParseKeyValuePairs parses a comma-separated string of key=value pairs
// and returns them as a map. Empty pairs are ignored, and whitespace
// around pairs is trimmed.
func ParseKeyValuePairs(input string) map[string]string {
	result := make(map[string]string)
	for _, pair := range strings.Split(input, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, val := ParseKeyValue(pair)
		if key != "" {
			result[key] = val
		}
	}
	return result
}
