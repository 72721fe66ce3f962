/*
Package config loads the settings for the tilemap command from a config file,
the environment and defaults, in that order of precedence.
*/
package config

import (
	"errors"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/bodgit/tilemap"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Name is the base name of the config file searched for when one isn't
// given explicitly.
const Name = "tilemap"

// Log configures where log output goes.
type Log struct {
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Config holds every setting.
type Config struct {
	Root    string         `mapstructure:"root"`
	Verbose bool           `mapstructure:"verbose"`
	Catalog string         `mapstructure:"catalog"`
	Log     Log            `mapstructure:"log"`
	Layout  tilemap.Layout `mapstructure:"layout"`
}

// Load reads the config from file, or from tilemap.yaml in the current
// directory if file is empty. A missing default config file is not an error.
// Environment variables prefixed with TILEMAP_ override the file.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("root", ".")
	v.SetDefault("verbose", false)
	v.SetDefault("catalog", "tilemap.db")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)

	// Every layout key needs a default for environment overrides to apply
	var layout map[string]interface{}
	if err := mapstructure.Decode(tilemap.DefaultLayout(), &layout); err != nil {
		return nil, err
	}
	for key, value := range layout {
		v.SetDefault("layout."+key, value)
	}

	v.SetEnvPrefix("TILEMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}

	return c, nil
}

// Logger builds the logger described by the config. Output is discarded
// unless verbose is set or a log file is configured.
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()

	var writers []io.Writer
	if c.Verbose {
		writers = append(writers, os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}
	if c.Log.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSize,
			MaxBackups: c.Log.MaxBackups,
		})
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(ioutil.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger
}
