package settings

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings that can be changed without recompiling, from a YAML file and
// then from the command line.
type Config struct {
	Color    bool     `yaml:"color"`
	Prompt   string   `yaml:"prompt"`
	Trace    bool     `yaml:"trace"`
	Snapshot Snapshot `yaml:"snapshot"`
}

// Snapshot says where to save the variables at the end of a run. An empty driver means don't.
type Snapshot struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

func Default() Config {
	return Config{Color: true, Prompt: "→ "}
}

// LoadConfig reads a YAML config file. Keys it doesn't know about are an error, as are
// missing files: if you don't want a config file, don't ask for one.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config: empty path")
	}
	abs, e := filepath.Abs(path)
	if e != nil {
		return Config{}, fmt.Errorf("config: resolve %s: %w", path, e)
	}
	file, e := os.Open(abs)
	if e != nil {
		return Config{}, fmt.Errorf("config: %w", e)
	}
	defer file.Close()
	cfg, e := DecodeConfig(file)
	if e != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", abs, e)
	}
	return cfg, nil
}

// DecodeConfig reads YAML on top of the defaults.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if e := decoder.Decode(&cfg); e != nil && e != io.EOF {
		return Config{}, e
	}
	cfg.Snapshot.Driver = strings.TrimSpace(cfg.Snapshot.Driver)
	cfg.Snapshot.DSN = strings.TrimSpace(cfg.Snapshot.DSN)
	return cfg, nil
}

// ParseSnapshot reads a snapshot target of the form driver:dsn, e.g. sqlite:vars.db.
func ParseSnapshot(s string) (Snapshot, error) {
	driver, dsn, ok := strings.Cut(s, ":")
	if !ok || driver == "" || dsn == "" {
		return Snapshot{}, fmt.Errorf("snapshot: expected driver:dsn, got %q", s)
	}
	return Snapshot{Driver: driver, DSN: dsn}, nil
}
