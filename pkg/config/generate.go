package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/consolecss/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// ToTOML encodes cfg as a config file.
func ToTOML(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrOutputFormat, "failed to encode configuration")
	}
	return out, nil
}

// WriteDefault writes the default configuration file to path, creating
// parent directories. An existing file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf(errors.ErrFileWrite, "%s already exists", path).WithDetail("path", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).WithDetail("path", path)
	}
	return nil
}
