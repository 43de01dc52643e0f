package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

var errMissingInterface = errors.New("missing interface")

type Config struct {
	ConfigPath string `koanf:"config"`
	LogLevel   string `koanf:"log_level"`
	Interface  string `koanf:"interface"`
	DockerHost string `koanf:"docker_host"`
	LockFile   string `koanf:"lock_file"`
}

func newFlagSet() *pflag.FlagSet {
	f := pflag.NewFlagSet("docker-mdns", pflag.ContinueOnError)
	f.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: docker-mdns [flags] <interface>\n\n")
		f.PrintDefaults()
	}

	f.String("config", "", "path to a YAML configuration file")
	f.String("log_level", "info", "log level (trace, debug, info, warn, error)")
	f.String("interface", "", "network interface whose addresses are published")
	f.String("docker_host", "", "docker engine address, defaults to $DOCKER_HOST or the local socket")
	f.String("lock_file", defaultLockFile(), "lock file preventing multiple instances, empty to disable")
	return f
}

// loadConfig merges defaults, the optional configuration file and the command
// line, in increasing order of priority. The positional interface argument
// always wins.
func loadConfig(f *pflag.FlagSet, args []string) (*Config, error) {
	if err := f.Parse(args); err != nil {
		return nil, err
	}

	if f.NArg() > 1 {
		return nil, fmt.Errorf("too many arguments: %v", f.Args())
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"log_level": "info",
		"lock_file": defaultLockFile(),
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed loading defaults: %w", err)
	}

	if path, _ := f.GetString("config"); len(path) > 0 {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed reading configuration file %s: %w", path, err)
		}
	}

	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("failed loading command line flags: %w", err)
	}

	if f.NArg() == 1 {
		if err := k.Set("interface", f.Arg(0)); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed unmarshalling configuration: %w", err)
	}

	if len(cfg.Interface) == 0 {
		return nil, errMissingInterface
	}

	return &cfg, nil
}
