package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	dockermdns "github.com/devgianlu/docker-mdns"
	"github.com/devgianlu/docker-mdns/avahi"
	"github.com/devgianlu/docker-mdns/dispatch"
	"github.com/devgianlu/docker-mdns/engine"
	"github.com/devgianlu/docker-mdns/publisher"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func run(ctx context.Context, logger dockermdns.Logger, cfg *Config) error {
	client, err := avahi.NewClient()
	if err != nil {
		return err
	}

	defer func() { _ = client.Close() }()

	logger.Infof("connected to avahi-daemon %s", client.Version())

	manager, err := publisher.NewManager(logger, client, cfg.Interface)
	if err != nil {
		return err
	}

	defer manager.Shutdown()

	eng, err := engine.New(ctx, logger, cfg.DockerHost)
	if err != nil {
		return err
	}

	defer func() { _ = eng.Close() }()

	return dispatch.New(logger, manager).Run(ctx, eng)
}

func main() {
	f := newFlagSet()

	cfg, err := loadConfig(f, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	} else if errors.Is(err, errMissingInterface) {
		_, _ = fmt.Fprintln(os.Stderr, "Provide an interface to listen on")
		f.Usage()
		os.Exit(1)
	} else if err != nil {
		log.WithError(err).Fatal("failed loading configuration")
	}

	// parse and set log level
	logLevel, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatalf("invalid log level: %s", cfg.LogLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.Infof("running %s", dockermdns.SystemInfoString())
	log.Infof("interface: %s", cfg.Interface)

	lock, err := acquireLock(cfg.LockFile)
	if err != nil {
		log.WithError(err).Fatal("failed acquiring instance lock")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = run(ctx, LogrusAdapter{log.NewEntry(log.StandardLogger())}, cfg)
	stop()

	if lockErr := releaseLock(lock); lockErr != nil {
		log.WithError(lockErr).Warnf("failed releasing instance lock")
	}

	if err != nil {
		log.WithError(err).Fatal("docker-mdns stopped")
	}

	log.Infof("bye bye")
}
