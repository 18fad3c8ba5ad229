package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"container-indicator/internal/logger"
)

// Load reads the config file at path. A missing or unreadable file yields the defaults;
// either way the result is written back so the file on disk always reflects every
// setting. The returned error only reports a failed write-back.
func Load(path string) (*Config, error) {
	log := logger.Named("config")

	cfg, err := loadFromFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("no config file, using defaults", zap.String("path", path))
		} else {
			log.Warn("failed to load config, using defaults", zap.String("path", path), zap.Error(err))
		}
		cfg = Default()
	}

	if err := Save(cfg, path); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}
