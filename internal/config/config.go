package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:147.0) Gecko/20100101 Firefox/147.0"

const (
	DefaultDomain       = "https://movies-api.tk"
	DefaultSearchDomain = "https://www.imdb.com"
	DefaultLocale       = "en"
	// DefaultResolution is a sentinel that matches no torrent key, so a
	// request without -r lists the available resolutions.
	DefaultResolution = "?"
	DefaultTimeout    = "30s"
	DefaultLogLevel   = "warn"
	DefaultMetricsJob = "popcorn"
)

type Config struct {
	Domain                string `mapstructure:"domain"`
	SearchDomain          string `mapstructure:"search_domain"`
	Locale                string `mapstructure:"locale"`
	Resolution            string `mapstructure:"resolution"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1m", etc.
	UserAgent             string `mapstructure:"user_agent"`
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	LogLevel              string `mapstructure:"log_level"`
	LogFile               string `mapstructure:"log_file"`
	SentryDSN             string `mapstructure:"sentry_dsn"`
	Metrics               struct {
		PushgatewayURL string `mapstructure:"pushgateway_url"`
		Job            string `mapstructure:"job"`
	} `mapstructure:"metrics"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
	logFile      *lumberjack.Logger
	// stdout carries the program output, logs go to stderr
	logOutput io.Writer = os.Stderr
)

func init() {
	logger = newConsoleLogger(logOutput).Level(zerolog.WarnLevel)
}

// SetLogOutput redirects console logging to w at the default level until
// Init configures it. Init writes to the same destination.
func SetLogOutput(w io.Writer) {
	logOutput = w
	logger = newConsoleLogger(w).Level(zerolog.WarnLevel)
}

func newConsoleLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:     out,
		NoColor: false,
	}).With().Timestamp().Logger()
}

// LoadConfig reads the configuration from file, environment and the given
// flags, in increasing order of precedence. configFile may be empty, in
// which case config.yaml is searched in the usual places and its absence
// is not an error.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "popcorn"))
		}
	}

	// Environment variable support
	v.SetEnvPrefix("POPCORN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("domain", DefaultDomain)
	v.SetDefault("search_domain", DefaultSearchDomain)
	v.SetDefault("locale", DefaultLocale)
	v.SetDefault("resolution", DefaultResolution)
	v.SetDefault("client_timeout", DefaultTimeout)
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("proxy_connection_string", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("sentry_dsn", "")
	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("metrics.job", DefaultMetricsJob)

	if flags != nil {
		for _, key := range []string{"domain", "log_level"} {
			flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.Metrics.Job == "" {
		config.Metrics.Job = DefaultMetricsJob
	}

	return &config, nil
}

// Init loads the configuration, configures the global logger from it and
// stores it for GetUserAgent.
func Init(configFile string, flags *pflag.FlagSet) (*Config, error) {
	config, err := LoadConfig(configFile, flags)
	if err != nil {
		return nil, err
	}

	configureLogger(config)
	globalConfig = config
	logger.Debug().
		Str("domain", config.Domain).
		Str("search_domain", config.SearchDomain).
		Str("locale", config.Locale).
		Msg("Configuration loaded successfully")

	return config, nil
}

func configureLogger(config *Config) {
	level := zerolog.WarnLevel // default
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'warn'")
		}
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: logOutput}
	if config.LogFile != "" {
		logFile = &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out = zerolog.MultiLevelWriter(out, logFile)
	}

	logger = zerolog.New(out).With().Timestamp().Logger().Level(level)
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}

// Close flushes and closes the log file, if one is open.
func Close() error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}
