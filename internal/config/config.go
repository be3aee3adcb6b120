package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/deploymenttheory/go-xattr/internal/common/fsutil"
	"github.com/deploymenttheory/go-xattr/internal/common/osutil"
	"github.com/deploymenttheory/go-xattr/pkg/extattr"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "go-xattr"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "GO_XATTR"
)

// Backend kinds
const (
	BackendOS      = "os"
	BackendSideCar = "sidecar"
	BackendMemory  = "memory"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// Attribute backend settings
	Backend struct {
		Kind       string `mapstructure:"kind"` // os, sidecar, memory
		SideCarDir string `mapstructure:"sidecar_dir"`
	} `mapstructure:"backend"`

	// Output settings
	Output struct {
		Format string `mapstructure:"format"` // xml, openstep, gnustep
	} `mapstructure:"output"`
}

// Global variables
var (
	// Global configuration instance
	Instance AppConfig

	// Status indicators
	ConfigLoaded bool
	ConfigFile   string

	// Viper instance
	v *viper.Viper

	// Ensure thread safety
	initOnce sync.Once
)

// Initialize sets up the configuration system
func Initialize(cfgFile string) error {
	var err error

	initOnce.Do(func() {
		err = load(cfgFile)
	})

	return err
}

// Reload re-reads configuration, replacing the current Instance
func Reload(cfgFile string) error {
	return load(cfgFile)
}

func load(cfgFile string) error {
	v = viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		addSearchPaths(v)
	}

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var err error
	if readErr := v.ReadInConfig(); readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			// Only capture error if the config file was found but couldn't be read
			err = fmt.Errorf("error reading config file: %w", readErr)
		}
		ConfigLoaded = false
		ConfigFile = ""
	} else {
		ConfigLoaded = true
		ConfigFile = v.ConfigFileUsed()
	}

	var cfg AppConfig
	if unmarshalErr := v.Unmarshal(&cfg); unmarshalErr != nil {
		return fmt.Errorf("error parsing config: %w", unmarshalErr)
	}
	Instance = cfg

	return err
}

// Viper returns the viper instance backing the configuration, creating an
// empty one if Initialize has not run
func Viper() *viper.Viper {
	if v == nil {
		v = viper.New()
		setDefaults(v)
	}
	return v
}

// BindFlags binds command line flags to configuration keys and refreshes
// Instance. Flags only take precedence when they were set explicitly.
func BindFlags(bindings map[string]*pflag.Flag) error {
	v := Viper()
	for key, flag := range bindings {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("error binding flag %s: %w", flag.Name, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}
	Instance = cfg
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")
	v.SetDefault("log_file", "")

	v.SetDefault("backend.kind", BackendOS)

	dataDir, err := fsutil.GetDataDir(AppName)
	if err == nil {
		v.SetDefault("backend.sidecar_dir", filepath.Join(dataDir, "sidecar"))
	} else {
		v.SetDefault("backend.sidecar_dir", "sidecar")
	}

	v.SetDefault("output.format", "xml")
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	// Always check current directory first
	v.AddConfigPath(".")

	if osutil.IsDevEnvironment() {
		return
	}

	configDir, err := fsutil.GetConfigDir(AppName)
	if err == nil {
		v.AddConfigPath(configDir)
	}

	v.AddConfigPath("/etc/" + AppName)
}

// NewBackend builds the attribute backend selected by the configuration
func NewBackend() (extattr.Backend, error) {
	switch Instance.Backend.Kind {
	case "", BackendOS:
		return extattr.OSBackend{}, nil
	case BackendSideCar:
		dir := Instance.Backend.SideCarDir
		if dir == "" {
			return nil, fmt.Errorf("sidecar backend requires backend.sidecar_dir")
		}
		if err := fsutil.CreateDirIfNotExists(dir); err != nil {
			return nil, fmt.Errorf("failed to create sidecar directory: %w", err)
		}
		return extattr.NewSideCarBackend(dir)
	case BackendMemory:
		return extattr.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported backend: %s", Instance.Backend.Kind)
	}
}
