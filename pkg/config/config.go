package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mumega/launchpad/pkg/dbcheck"
	"github.com/mumega/launchpad/pkg/logger"
)

// Config holds all configuration for the launcher.
type Config struct {
	// Layout names the application files.
	Layout Layout `mapstructure:"layout"`
	// Runtime configures interpreter and installer.
	Runtime Runtime `mapstructure:"runtime"`
	// Database holds the connection string and probe settings.
	Database dbcheck.Config `mapstructure:"database"`
	// Server feeds the startup banner.
	Server Server `mapstructure:"server"`
	// Handoff selects exec or supervise.
	Handoff Handoff `mapstructure:"handoff"`
	// Log holds configuration for the diagnostic logger.
	Log logger.Config `mapstructure:"log"`

	// Env is the snapshot taken while loading. Not read from the environment.
	Env Environment `mapstructure:"-"`
}

// Environment is the read-only view of the process environment taken once
// at startup. Steps receive it by value and never consult os.Getenv.
type Environment struct {
	// VirtualEnv is the value of VIRTUAL_ENV, empty when unset.
	VirtualEnv string
	// VirtualEnvActive is true when VIRTUAL_ENV is set and non-empty.
	VirtualEnvActive bool
	// ConfigFile is the resolved path of the optional .env file.
	ConfigFile string
	// ConfigFilePresent is true when ConfigFile existed and was loaded.
	ConfigFilePresent bool
	// ConfigFileErr is why an existing ConfigFile could not be loaded.
	// The defaults apply in that case.
	ConfigFileErr error
	// DatabaseURL is the connection string as configured (may still be invalid).
	DatabaseURL string
	// Environ is the environment handed to child processes.
	Environ []string
}

// Load reads the optional .env file under path, then builds the
// configuration from environment variables and struct-tag defaults.
// Variables already present in the environment win over .env entries.
// A .env that exists but cannot be loaded does not fail Load; the reason
// is kept on Env.ConfigFileErr.
func Load(path string) (*Config, error) {
	envPath := ".env"
	if override, ok := os.LookupEnv("LAYOUT_ENV_FILE"); ok && override != "" {
		envPath = override
	}
	envPath = Layout{Root: path}.Path(envPath)

	present, envErr := loadEnvFile(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DATABASE_URL -> database.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}

	config.Layout.Root = path
	if config.Handoff.Mode == "" {
		config.Handoff.Mode = DefaultHandoffMode()
	}

	venv, _ := os.LookupEnv("VIRTUAL_ENV")
	config.Env = Environment{
		VirtualEnv:        venv,
		VirtualEnvActive:  venv != "",
		ConfigFile:        envPath,
		ConfigFilePresent: present,
		ConfigFileErr:     envErr,
		DatabaseURL:       config.Database.URL,
		Environ:           os.Environ(),
	}

	return &config, nil
}

// loadEnvFile loads path into the process environment without overriding
// existing variables. It reports whether the file was loaded. A missing
// file is not an error; any other problem is returned for the
// configuration step to warn about.
func loadEnvFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
