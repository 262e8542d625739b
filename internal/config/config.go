package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Timer   TimerConfig   `yaml:"timer"`
	Alert   AlertConfig   `yaml:"alert"`
	UI      UIConfig      `yaml:"ui"`
	History HistoryConfig `yaml:"history"`
}

// TimerConfig is the duration loaded into the inputs at startup.
type TimerConfig struct {
	Hours   int `yaml:"hours"`
	Minutes int `yaml:"minutes"`
	Seconds int `yaml:"seconds"`
}

type AlertConfig struct {
	// Sound is a WAV file; empty means the built-in chime.
	Sound  string  `yaml:"sound"`
	Volume float64 `yaml:"volume"`
	Mute   bool    `yaml:"mute"`
}

type UIConfig struct {
	Theme string `yaml:"theme"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Hours:   DefaultHours,
			Minutes: DefaultMinutes,
			Seconds: DefaultSeconds,
		},
		Alert: AlertConfig{
			Volume: DefaultVolume,
		},
		UI: UIConfig{
			Theme: DefaultTheme,
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Normalize clamps every field into its valid range.
func (c *Config) Normalize() {
	c.Timer.Hours = util.Clamp(c.Timer.Hours, 0, MaxHours)
	c.Timer.Minutes = util.Clamp(c.Timer.Minutes, 0, MaxMinutes)
	c.Timer.Seconds = util.Clamp(c.Timer.Seconds, 0, MaxSeconds)
	if c.Alert.Volume < MinVolume {
		c.Alert.Volume = MinVolume
	}
	if c.Alert.Volume > MaxVolume {
		c.Alert.Volume = MaxVolume
	}
	if c.UI.Theme == "" {
		c.UI.Theme = DefaultTheme
	}
}

// HistoryPath resolves the history database location.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(util.DataDir(AppName), DBFileName)
}

type Manager struct {
	fs         afero.Fs
	config     *Config
	configPath string
}

// DefaultPath returns the config file location under the user's config dir.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// NewManager loads path from fs, writing the defaults when the file does not
// exist yet. An empty path means DefaultPath.
func NewManager(fs afero.Fs, path string) (*Manager, error) {
	if path == "" {
		path = DefaultPath()
	}
	m := &Manager{fs: fs, configPath: path}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}
	if !exists {
		m.config = DefaultConfig()
		if err := m.SaveConfig(); err != nil {
			return nil, err
		}
		return m, nil
	}
	if err := m.loadConfig(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) loadConfig() error {
	data, err := afero.ReadFile(m.fs, m.configPath)
	if err != nil {
		return fmt.Errorf("read config %s: %w", m.configPath, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config %s: %w", m.configPath, err)
	}
	config.Normalize()

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	return afero.WriteFile(m.fs, m.configPath, data, os.FileMode(0o644))
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}
