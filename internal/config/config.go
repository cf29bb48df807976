package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for clocked, stored in ~/.clocked/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Service ServiceConfig `json:"service"`
	Report  ReportConfig  `json:"report"`
	Hours   HoursConfig   `json:"hours"`
}

// ServiceConfig holds the remote time service settings.
type ServiceConfig struct {
	// BaseURL is the service root, e.g. "https://clocked.io".
	BaseURL string `json:"base_url"`
	// APIKeyFile is the dotfile holding the API key. "~/" is expanded.
	APIKeyFile string `json:"api_key_file"`
	// Auth is one of "header", "cookie" or "bearer".
	Auth string `json:"auth"`
}

// ReportConfig holds summary and CSV settings.
type ReportConfig struct {
	// Timezone is the IANA zone tasks are reported in. Empty = system local time.
	Timezone string `json:"timezone"`
	// Filter is "event" (bounded, by UTC event date) or "task" (lower bound on task start date).
	Filter string `json:"filter"`
}

// HoursConfig holds commit-log estimation settings.
type HoursConfig struct {
	// VCS is "hg" or "git".
	VCS string `json:"vcs"`
	// CategoriesFile is a YAML file with per-repository category rules.
	CategoriesFile string `json:"categories_file"`
}

const (
	DefaultBaseURL        = "https://clocked.io"
	DefaultAPIKeyFile     = "~/.clocked.io.apikey"
	DefaultAuth           = "header"
	DefaultFilter         = "event"
	DefaultVCS            = "hg"
	DefaultCategoriesFile = "~/.clocked/categories.yaml"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Service: ServiceConfig{
			BaseURL:    DefaultBaseURL,
			APIKeyFile: DefaultAPIKeyFile,
			Auth:       DefaultAuth,
		},
		Report: ReportConfig{
			Filter: DefaultFilter,
		},
		Hours: HoursConfig{
			VCS:            DefaultVCS,
			CategoriesFile: DefaultCategoriesFile,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing.
const configTemplate = `// clocked configuration – ~/.clocked/config.json
//
// All settings are optional; the defaults below talk to clocked.io.
{
  // ── Time service ─────────────────────────────────────────────────────────
  "service": {
    // Service root URL. For the older qpgc service use "http://time.qpgc.org".
    "base_url": "https://clocked.io",

    // File holding your API key (one line).
    "api_key_file": "~/.clocked.io.apikey",

    // How the key is sent: "header" (apikey header), "cookie" (apikey cookie)
    // or "bearer" (Authorization: Bearer).
    "auth": "header"
  },

  // ── Summaries ────────────────────────────────────────────────────────────
  "report": {
    // IANA timezone for reports, e.g. "Europe/Oslo". Empty = system local time.
    "timezone": "",

    // Date range granularity: "event" filters stamps by their UTC date before
    // pairing; "task" drops sessions starting before --start-date.
    "filter": "event"
  },

  // ── Commit hours ─────────────────────────────────────────────────────────
  "hours": {
    // "hg" or "git".
    "vcs": "hg",

    // Per-repository category rules (YAML). Built-in rules apply if missing.
    "categories_file": "~/.clocked/categories.yaml"
  }
}
`

// FilePath returns the path to ~/.clocked/config.json.
func FilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".clocked", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.clocked/config.json, creating it with annotated defaults on
// first run.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file is created from the
// annotated template and defaults are returned.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	def := defaultConfig()
	if cfg.Service.BaseURL == "" {
		cfg.Service.BaseURL = def.Service.BaseURL
	}
	if cfg.Service.APIKeyFile == "" {
		cfg.Service.APIKeyFile = def.Service.APIKeyFile
	}
	if cfg.Service.Auth == "" {
		cfg.Service.Auth = def.Service.Auth
	}
	if cfg.Report.Filter == "" {
		cfg.Report.Filter = def.Report.Filter
	}
	if cfg.Hours.VCS == "" {
		cfg.Hours.VCS = def.Hours.VCS
	}
	if cfg.Hours.CategoriesFile == "" {
		cfg.Hours.CategoriesFile = def.Hours.CategoriesFile
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
