package config

import (
	"os"
	"strings"

	"github.com/wricardo/corridor/game/engine"
)

// Resolve finds a ruleset for the command-line tools. A name ending in
// ".json" that points at an existing file is loaded directly; anything else
// is looked up by ID in configDir. The standard ruleset is served when
// configDir does not exist.
func Resolve(configDir, name string) (*engine.Rules, error) {
	if name == "" {
		name = DefaultConfigID
	}

	if strings.HasSuffix(name, ".json") {
		if _, err := os.Stat(name); err == nil {
			return engine.LoadRules(name)
		}
	}

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if configKey(name) == DefaultConfigID {
			return engine.Standard, nil
		}
		return nil, ErrConfigNotFound
	}

	manager, err := NewManager(configDir)
	if err != nil {
		return nil, err
	}
	return manager.LoadConfig(name)
}
