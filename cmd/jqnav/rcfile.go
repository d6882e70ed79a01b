package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// userConfigFile is jqnav's rc file, a direct generalization of the
// teacher's ~/.nnav key=value format to the navigator's own settings.
const userConfigFile = ".jqnavrc"

// RCConfig holds the parsed contents of ~/.jqnavrc, with defaults applied
// for anything missing or malformed.
type RCConfig struct {
	HistorySize int
	Indent      int
	Theme       string
}

func defaultRCConfig() RCConfig {
	return RCConfig{HistorySize: 100, Indent: 2, Theme: "dark"}
}

// ensureRCFile guarantees ~/.jqnavrc exists with secure permissions,
// creating it with documented defaults on first run (teacher's
// ensureConfig, same 0600 hardening).
func ensureRCFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	cfgPath := filepath.Join(home, userConfigFile)

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		f, err := os.OpenFile(cfgPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
		if err != nil {
			return "", err
		}
		defer f.Close()
		_, _ = f.WriteString(`# jqnav configuration
history_size=100
indent=2
theme=dark
`)
	} else if err == nil {
		_ = os.Chmod(cfgPath, 0o600)
	}
	return cfgPath, nil
}

// loadRCFile parses ~/.jqnavrc into an RCConfig, falling back to defaults
// for any key that's missing or fails to parse. Blank and "#"-prefixed
// lines are skipped; malformed lines are silently ignored, same as the
// teacher's loadConfig.
func loadRCFile() (RCConfig, error) {
	cfgPath, err := ensureRCFile()
	if err != nil {
		return defaultRCConfig(), err
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return defaultRCConfig(), err
	}

	cfg := defaultRCConfig()
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])
		switch key {
		case "history_size":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				cfg.HistorySize = n
			}
		case "indent":
			if n, err := strconv.Atoi(val); err == nil && n >= 0 && n <= 80 {
				cfg.Indent = n
			}
		case "theme":
			if val != "" {
				cfg.Theme = val
			}
		}
	}
	return cfg, nil
}
