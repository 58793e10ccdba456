package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type storage struct {
	Path             string        `mapstructure:"path"`
	SimulatedLatency time.Duration `mapstructure:"simulated_latency"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Storage        storage    `mapstructure:"storage"`
}

func Load() Config {
	viper.SetDefault("log_level", "INFO")
	viper.SetDefault("http_server_addr", ":8080")
	viper.SetDefault("storage.path", "storefront.db")
	viper.SetDefault("storage.simulated_latency", "200ms")

	path, explicit := getConfigFilepath()
	viper.SetConfigFile(path)

	if err := viper.ReadInConfig(); err != nil {
		// Defaults cover everything, so a missing file is fatal only
		// when the user pointed at one.
		if explicit || !os.IsNotExist(err) {
			die(err)
		}
	}

	var cfg Config
	if err := viper.UnmarshalExact(&cfg); err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() (path string, explicit bool) {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env, true
	}
	return *arg, cmdLine.Changed("config")
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Storage:
	Path=%q
	SimulatedLatency=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Storage.Path,
		c.Storage.SimulatedLatency,
	)
}
