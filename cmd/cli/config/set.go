package config

import (
	"fmt"
	"strings"

	"github.com/jpnorenam/disk-health/pkg/config"
)

// SetValues applies key=value pairs passed with the global --set flag as user
// configuration. Nothing is persisted.
func SetValues(cfg config.Config, keyValues []string) error {
	for _, kv := range keyValues {
		if err := setValue(cfg, kv); err != nil {
			return err
		}
	}
	return nil
}

func setValue(cfg config.Config, keyValue string) error {
	if keyValue == "" || keyValue[0] == '=' {
		return fmt.Errorf("key must not be empty")
	}

	// The value itself can contain an equal sign, so we split only on the first occurrence
	parts := strings.SplitN(keyValue, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("expected key=value, got %q", keyValue)
	}
	key, value := parts[0], parts[1]

	err := cfg.Set(key, value, config.UserConfig)
	if err != nil {
		return fmt.Errorf("error setting value %q for %q: %v", value, key, err)
	}

	return nil
}
