package main

import (
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/medtracker/medtracker-go/internal/cli"
	"github.com/medtracker/medtracker-go/internal/client"
	"github.com/medtracker/medtracker-go/internal/config"
	"github.com/medtracker/medtracker-go/internal/session"
	"github.com/medtracker/medtracker-go/pkg/logger"
	"github.com/medtracker/medtracker-go/pkg/metrics"
	"github.com/medtracker/medtracker-go/pkg/validator"
)

var version = "dev"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logger.NewLogger(&logger.Config{Level: level, Output: os.Stderr})

	store, err := session.NewFileStore(cfg.Session.Dir)
	if err != nil {
		log.Fatal(err, "failed to open session store")
	}

	var opts []session.Option
	if cfg.Session.CookieMirror {
		if base, parseErr := url.Parse(cfg.API.BaseURL); parseErr == nil {
			if jar, jarErr := cookiejar.New(nil); jarErr == nil {
				opts = append(opts, session.WithCookieMirror(jar, base))
			}
		}
	}
	sess := session.NewManager(store, opts...)

	apiClient := client.New(cfg.API, sess, log,
		client.WithMetrics(metrics.New("medtracker")),
		client.OnSessionExpired(func() {
			fmt.Fprintln(os.Stderr, "Session expired, run `medtracker auth login` to continue")
		}),
	)

	app := &cli.App{
		Client:    apiClient,
		Session:   sess,
		Validator: validator.New(),
	}

	if err := cli.NewRootCmd(app, version).Execute(); err != nil {
		os.Exit(1)
	}
}
