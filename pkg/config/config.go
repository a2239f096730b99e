package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"
)

type Config interface {
	Set(key, value string, confType configType) error
	Get(key string) (map[string]any, error)
	GetAll() (map[string]any, error)
	Unset(key string, confType configType) error
}

// Configuration keys
const (
	DrivePath           = "drive.path"
	OutputFormat        = "output.format"
	OutputColor         = "output.color"
	QueryElementStatus  = "query.element-status"
	EnvPrefix           = "DISK_HEALTH_"
	defaultDrivePath    = `\\.\PhysicalDrive0`
	defaultOutputFormat = "text"
	defaultOutputColor  = "auto"
)

var defaults = map[string]string{
	DrivePath:          defaultDrivePath,
	OutputFormat:       defaultOutputFormat,
	OutputColor:        defaultOutputColor,
	QueryElementStatus: "true",
}

type config struct {
	storage   storage
	lookupEnv func(string) (string, bool)
}

// NewConfig returns a configuration seeded with the package defaults, reading
// overrides from the process environment.
func NewConfig() Config {
	return newConfig(NewMemoryStorage(), os.LookupEnv)
}

func newConfig(s storage, lookupEnv func(string) (string, bool)) *config {
	c := &config{
		storage:   s,
		lookupEnv: lookupEnv,
	}
	for k, v := range defaults {
		// Memory storage never fails
		_ = c.storage.Set(c.nestKeys(PackageConfig, k), v)
	}
	return c
}

const configKeyPrefix = "config"

type configType string

// config precedence, from lowest to highest
var confPrecedence = []configType{
	PackageConfig, // values set by the package
	EnvConfig,     // values set in the environment, overriding package values
	UserConfig,    // values set by the user, overriding all others
}

// config types
const (
	PackageConfig configType = "package"
	EnvConfig     configType = "env"
	UserConfig    configType = "user"
)

// Set sets a configuration value
func (c *config) Set(key, value string, confType configType) error {
	if confType == EnvConfig {
		return fmt.Errorf("environment config is read-only, set %s instead", EnvVar(key))
	}

	// User configs are overrides, reject unknown keys
	if confType == UserConfig {
		valMap, err := c.Get(key)
		if err != nil {
			return fmt.Errorf("error checking existing keys: %s", err)
		}
		if len(valMap) == 0 {
			return fmt.Errorf("unknown key")
		}
	}

	return c.storage.Set(c.nestKeys(confType, key), value)
}

// Get returns one or more configuration fields in as a flat map, after applying precedence rules
// If the value is a single primitive value, the map will have one entry with the full key
func (c *config) Get(key string) (map[string]any, error) {
	configs, err := c.loadConfigs()
	if err != nil {
		return nil, err
	}

	// Filter to needed keys
	for k := range configs {
		// Only keep exact key matches for both primitives and objects
		// e.g. drive and drive.path
		if k != key && !strings.HasPrefix(k, key+".") {
			delete(configs, k)
		}
	}

	return configs, nil
}

// GetAll returns all configurations as a flattened map
func (c *config) GetAll() (map[string]any, error) {
	return c.loadConfigs()
}

func (c *config) Unset(key string, confType configType) error {
	return c.storage.Unset(c.nestKeys(confType, key))
}

// loadConfigs loads all configurations as a flattened map, after applying precedence rules
func (c *config) loadConfigs() (map[string]any, error) {
	// Load configurations in the order of precedence
	var finalMap = make(map[string]any)
	for _, k := range confPrecedence {
		if k == EnvConfig {
			maps.Copy(finalMap, c.envOverrides(finalMap))
			continue
		}

		values, err := c.storage.Get(c.nestKeys(k, "."))
		if errors.Is(err, ErrorNotFound) {
			continue
		} else if err != nil {
			return nil, err
		}
		maps.Copy(finalMap, values)
	}

	return finalMap, nil
}

// envOverrides looks up an environment variable for each known key
func (c *config) envOverrides(known map[string]any) map[string]any {
	overrides := make(map[string]any)
	for k := range known {
		if v, found := c.lookupEnv(EnvVar(k)); found {
			overrides[k] = v
		}
	}
	return overrides
}

// nestKeys creates a dot-separated key with the expected prefix
func (c *config) nestKeys(confType configType, key string) string {
	if key == "." { // special case, referencing the parent
		return strings.Join([]string{configKeyPrefix, string(confType)}, ".")
	} else {
		return strings.Join([]string{configKeyPrefix, string(confType), key}, ".")
	}
}

// EnvVar returns the environment variable that overrides key,
// e.g. DISK_HEALTH_QUERY_ELEMENT_STATUS for query.element-status
func EnvVar(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return EnvPrefix + strings.ToUpper(r.Replace(key))
}

// GetString returns the effective value of a single key
func GetString(c Config, key string) (string, error) {
	valMap, err := c.Get(key)
	if err != nil {
		return "", err
	}
	v, found := valMap[key]
	if !found {
		return "", fmt.Errorf("%q: %w", key, ErrorNotFound)
	}
	return fmt.Sprint(v), nil
}

func GetBool(c Config, key string) (bool, error) {
	s, err := GetString(c, key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid value for %q: %w", key, err)
	}
	return b, nil
}
