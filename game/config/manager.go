package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/corridor/game/engine"
	"github.com/wricardo/corridor/game/service"
)

var (
	// ErrConfigNotFound is the service sentinel so callers can match either name
	ErrConfigNotFound = service.ErrConfigNotFound
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// DefaultConfigID is the ruleset used when a caller names none
const DefaultConfigID = "standard"

// Manager handles ruleset loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.Rules
	defaultID     string
	configs       map[string]*engine.Rules
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	// Ensure config directory exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.Rules),
	}

	// Load default config
	if err := m.loadDefaultConfig(); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	return m, nil
}

func configKey(name string) string {
	return strings.TrimSuffix(name, ".json")
}

// LoadConfig loads a ruleset by name. The built-in standard ruleset is
// served when no file of that name exists.
func (m *Manager) LoadConfig(name string) (*engine.Rules, error) {
	key := configKey(name)

	m.mu.RLock()
	// Check cache first
	if rules, exists := m.configs[key]; exists {
		m.mu.RUnlock()
		return rules, nil
	}
	m.mu.RUnlock()

	// Load from file
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if rules, exists := m.configs[key]; exists {
		return rules, nil
	}

	rules, err := m.readConfig(key)
	if err != nil {
		return nil, err
	}

	// Cache the config
	m.configs[key] = rules
	return rules, nil
}

// readConfig reads and validates one file. Callers hold m.mu.
func (m *Manager) readConfig(key string) (*engine.Rules, error) {
	if strings.ContainsAny(key, `/\`) || key == "" || key == "." || key == ".." {
		return nil, fmt.Errorf("%w: bad config name %q", ErrInvalidConfig, key)
	}

	configPath := filepath.Join(m.configDir, key+".json")

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			if key == DefaultConfigID {
				return engine.Standard, nil
			}
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse config
	var rules engine.Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate config
	if err := engine.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &rules, nil
}

// ListConfigs returns information about all ruleset files, sorted by ID
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*service.ConfigInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		// Remove .json extension for config name
		name := configKey(entry.Name())

		// Try to load the config to get details
		rules, err := m.LoadConfig(name)
		if err != nil {
			// Skip invalid configs
			continue
		}

		configs = append(configs, &service.ConfigInfo{
			Filename:       entry.Name(),
			ConfigID:       name, // This is the identifier to use for session creation
			Name:           rules.Name,
			Description:    rules.Description,
			BoardSize:      rules.BoardSize,
			WallsPerPlayer: rules.WallsPerPlayer,
		})
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].ConfigID < configs[j].ConfigID
	})

	return configs, nil
}

// GetDefault returns the default ruleset
func (m *Manager) GetDefault() *engine.Rules {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// DefaultID returns the config ID of the default ruleset
func (m *Manager) DefaultID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultID
}

// SetDefault sets the default ruleset by name
func (m *Manager) SetDefault(name string) error {
	rules, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = rules
	m.defaultID = configKey(name)
	return nil
}

// ReloadConfig drops a cached ruleset and reads it again from disk
func (m *Manager) ReloadConfig(name string) error {
	m.mu.Lock()
	// Remove from cache to force reload
	delete(m.configs, configKey(name))
	m.mu.Unlock()

	_, err := m.LoadConfig(name)
	return err
}

// RefreshCache reloads all cached rulesets from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	// Clear cache
	m.configs = make(map[string]*engine.Rules)
	m.mu.Unlock()

	// Reload default config
	return m.loadDefaultConfig()
}

// Count returns the number of cached rulesets
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.configs)
}

// loadDefaultConfig picks standard.json, then the first valid file, then
// the built-in standard ruleset.
func (m *Manager) loadDefaultConfig() error {
	id := DefaultConfigID
	rules, err := m.LoadConfig(id)
	if err != nil || rules == engine.Standard {
		// Prefer a ruleset on disk over the built-in one
		configs, listErr := m.ListConfigs()
		if listErr == nil && len(configs) > 0 {
			if first, loadErr := m.LoadConfig(configs[0].ConfigID); loadErr == nil {
				rules, id = first, configs[0].ConfigID
			}
		}
	}
	if rules == nil {
		rules, id = engine.Standard, DefaultConfigID
	}

	m.mu.Lock()
	m.defaultConfig = rules
	m.defaultID = id
	m.mu.Unlock()
	return nil
}

// SaveConfig validates a ruleset and writes it to disk
func (m *Manager) SaveConfig(name string, rules *engine.Rules) error {
	// Validate config before saving
	if err := engine.ValidateRules(rules); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	key := configKey(name)
	if strings.ContainsAny(key, `/\`) || key == "" || key == "." || key == ".." {
		return fmt.Errorf("%w: bad config name %q", ErrInvalidConfig, name)
	}

	configPath := filepath.Join(m.configDir, key+".json")

	// Marshal config to JSON with indentation
	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Update cache
	m.mu.Lock()
	m.configs[key] = rules
	m.mu.Unlock()

	return nil
}
