package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	TargetToday     = "today"
	TargetYesterday = "yesterday"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Source     SourceConfig     `mapstructure:"source"`
	Archive    ArchiveConfig    `mapstructure:"archive"`
}

type DictionaryConfig struct {
	Path string     `mapstructure:"path" validate:"required,file"`
	Lock LockConfig `mapstructure:"lock"`
}

type LockConfig struct {
	Attempts uint          `mapstructure:"attempts" validate:"min=1"`
	Delay    time.Duration `mapstructure:"delay"`
}

type SourceConfig struct {
	Kind    string              `mapstructure:"kind" validate:"oneof=html nytimes"`
	Timeout time.Duration       `mapstructure:"timeout"`
	HTML    HTMLSourceConfig    `mapstructure:"html"`
	NYTimes NYTimesSourceConfig `mapstructure:"nytimes"`
}

type HTMLSourceConfig struct {
	URL       string `mapstructure:"url" validate:"required,url"`
	UserAgent string `mapstructure:"user_agent" validate:"required"`
}

type NYTimesSourceConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

type ArchiveConfig struct {
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`
	Target   string `mapstructure:"target" validate:"oneof=today yesterday"`
}

// Location returns the time zone target dates are computed in.
func (c ArchiveConfig) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation(%s) > %w", c.Timezone, err)
	}
	return location, nil
}

// DayOffset is the number of days added to the current day for the configured target.
func (c ArchiveConfig) DayOffset() int {
	if c.Target == TargetYesterday {
		return -1
	}
	return 0
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordarchiver")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dictionary.path", "all_words.json")
	v.SetDefault("dictionary.lock.attempts", 10)
	v.SetDefault("dictionary.lock.delay", 500*time.Millisecond)
	v.SetDefault("source.kind", "html")
	v.SetDefault("source.timeout", 30*time.Second)
	v.SetDefault("source.html.url", "https://wordfinder.yourdictionary.com/wordle/answers/")
	v.SetDefault("source.html.user_agent", "Mozilla/5.0")
	v.SetDefault("source.nytimes.url", "https://www.nytimes.com/svc/wordle/v2")
	v.SetDefault("archive.timezone", "America/Los_Angeles")
	v.SetDefault("archive.target", TargetToday)

	if err := v.BindEnv("dictionary.path", "WORDARCHIVER_DICTIONARY_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDARCHIVER_DICTIONARY_PATH environment variable: %w", err)
	}
	if err := v.BindEnv("source.kind", "WORDARCHIVER_SOURCE"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDARCHIVER_SOURCE environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
