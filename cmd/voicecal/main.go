package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voicecal/internal/config"
	"voicecal/internal/gcal"
	"voicecal/internal/ics"
	appLog "voicecal/internal/log"
	"voicecal/internal/parse"
	"voicecal/internal/remind"
	"voicecal/internal/store"
	"voicecal/internal/web"
)

type flagConfig struct {
	configPath string
	listen     string
	text       string
	serve      bool
	debug      bool
}

func main() {
	flags := parseFlags()
	if flags.debug {
		appLog.SetLevel(appLog.LevelDebug)
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}
	if flags.listen != "" {
		conf.Listen = flags.listen
	}

	loc := loadLocation(conf.Timezone)

	if flags.text != "" {
		if err := runOnce(conf, loc, flags.text); err != nil {
			appLog.Error("parse failed", err)
			os.Exit(1)
		}
		return
	}

	if !flags.serve {
		fmt.Fprintln(os.Stderr, "nothing to do: pass -text to parse an utterance or -serve to start the API")
		os.Exit(2)
	}

	if err := runServe(conf, loc); err != nil {
		appLog.Error("server failed", err)
		os.Exit(1)
	}
}

// runOnce parses a single utterance and prints the draft, its ICS rendering
// and the prefilled Google Calendar link to stdout.
func runOnce(conf *config.Config, loc *time.Location, text string) error {
	d := parse.ParseWith(text, time.Now().In(loc), parse.Options{
		DefaultDuration: conf.DefaultDurationMinutes,
	})

	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	fmt.Println()
	fmt.Println(ics.Build(d, time.Now().In(loc)))
	fmt.Println()
	fmt.Println(gcal.EventURL(d))
	return nil
}

func runServe(conf *config.Config, loc *time.Location) error {
	st, err := store.Open(conf.DBPath, loc)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var inserter web.Inserter
	if conf.GoogleCredentials != "" {
		ins, err := gcal.NewInserterFromCredentials(ctx, conf.GoogleCredentials)
		if err != nil {
			return fmt.Errorf("google credentials: %w", err)
		}
		inserter = ins
	} else {
		appLog.Info("no Google credentials configured; insertion endpoint disabled")
	}

	sweeper := remind.New(st, nil)
	if err := sweeper.Start(conf.ReminderCron); err != nil {
		return fmt.Errorf("start reminder sweeper: %w", err)
	}
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:    conf.Listen,
		Handler: web.NewServer(conf, st, inserter, loc).Handler(),
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("starting HTTP server", "listen", "http://"+conf.Listen, "timezone", conf.Timezone)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		appLog.Info("signal received, shutting down", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	appLog.Info("voicecal exiting")
	return nil
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		appLog.Error("failed to load timezone; falling back to local", err, "name", name)
		return time.Local
	}
	return loc
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "/etc/voicecal/config.yaml", "Path to config file")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address (overrides config if set)")
	flag.StringVar(&cfg.text, "text", "", "Parse a single utterance, print the result and exit")
	flag.BoolVar(&cfg.serve, "serve", false, "Start the HTTP API server")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")

	flag.Parse()

	return cfg
}
