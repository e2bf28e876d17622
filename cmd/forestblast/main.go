// Package main is the entry point for forestblast.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/forestblast/internal/config"
	"github.com/samdwyer/forestblast/internal/game"
	"github.com/samdwyer/forestblast/internal/gamedata"
	"github.com/samdwyer/forestblast/internal/telemetry"
	"github.com/samdwyer/forestblast/internal/ui"
)

func main() {
	// .env is optional; variables may be set directly
	envErr := godotenv.Load()

	conf, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "forestblast: %v\n\n%s", err, config.Usage())
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "forestblast: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log.Logger = logger

	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.Telemetry.Enabled {
		setupOTelEnv(conf.Telemetry)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, game will run without observability")
			telemetry.Disable()
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("error shutting down telemetry")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	glyphs, err := gamedata.LoadGlyphs()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load glyphs")
	}

	presenter, err := newPresenter(conf, glyphs)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize display")
	}

	g := game.New(game.Config{Seed: conf.Seed, TurnDelay: conf.TurnDelay}, presenter, logger)
	if err := g.Run(ctx); err != nil {
		log.Fatal().Err(err).Str("game_id", g.ID()).Msg("game aborted")
	}
}

func newPresenter(conf *config.Config, glyphs *gamedata.GlyphSet) (game.Presenter, error) {
	if conf.Display == config.DisplayPlain {
		return ui.NewConsole(os.Stdout, glyphs), nil
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(screen, glyphs), nil
}

// newLogger writes to FORESTBLAST_LOG_FILE when set. Otherwise plain mode logs
// to stderr and terminal mode only lets errors through, since anything logged
// while the screen is up draws over it.
func newLogger(conf *config.Config) (zerolog.Logger, func(), error) {
	if lvl, err := zerolog.ParseLevel(conf.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	stderr := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	var out io.Writer = &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: stderr},
		Level:  zerolog.ErrorLevel,
	}
	closeFn := func() {}

	switch {
	case conf.LogFile != "":
		f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case conf.Display == config.DisplayPlain:
		out = stderr
	}

	return zerolog.New(out).With().Timestamp().Logger(), closeFn, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv(conf config.Telemetry) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	if conf.APIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", conf.APIKey, conf.Dataset))
	}
}
