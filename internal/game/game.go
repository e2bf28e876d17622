package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/forestblast/internal/forest"
	"github.com/samdwyer/forestblast/internal/telemetry"
)

// Game drives a GameState to the end, one explosion per frame.
type Game struct {
	id        string
	config    Config
	presenter Presenter
	logger    zerolog.Logger
	rng       forest.Source
	state     *GameState
}

// New creates a new game instance.
func New(cfg Config, presenter Presenter, logger zerolog.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Seed = seed

	id := uuid.NewString()

	return &Game{
		id:        id,
		config:    cfg,
		presenter: presenter,
		logger:    logger.With().Str("game_id", id).Logger(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// ID returns the session id of the game.
func (g *Game) ID() string {
	return g.id
}

// State returns the game state, or nil before Run.
func (g *Game) State() *GameState {
	return g.state
}

// Run executes the main game loop until the game is over, the user quits or
// ctx is cancelled. Quitting and cancellation are not errors.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.state = NewGameState(g.rng)
	initSpan.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.Int64("game.seed", g.config.Seed),
		attribute.Int("target.x", int(g.state.TargetLocation().X)),
		attribute.Int("target.y", int(g.state.TargetLocation().Y)),
		attribute.Int("ally.x", int(g.state.AllyLocation().X)),
		attribute.Int("ally.y", int(g.state.AllyLocation().Y)),
	)
	initSpan.End()

	g.logger.Info().
		Int64("seed", g.config.Seed).
		Stringer("target", g.state.TargetLocation()).
		Stringer("ally", g.state.AllyLocation()).
		Msg("game started")

	err := g.loop(ctx)

	_, finishSpan := tracer.Start(ctx, "game.finish")
	finishSpan.SetAttributes(
		attribute.String("game.phase", g.state.Phase().String()),
		attribute.Int("game.turns", g.state.Turn),
		attribute.Int("game.hits", g.state.Hits),
	)
	finishSpan.End()

	closeErr := g.presenter.Close()

	switch {
	case errors.Is(err, ErrQuit), errors.Is(err, context.Canceled):
		g.logger.Info().Int("turn", g.state.Turn).Msg("game stopped early")
		return closeErr
	case err != nil:
		return errors.Join(err, closeErr)
	}

	g.logger.Info().
		Stringer("phase", g.state.Phase()).
		Int("turns", g.state.Turn).
		Int("hits", g.state.Hits).
		Msg("game over")

	return closeErr
}

func (g *Game) loop(ctx context.Context) error {
	for !g.state.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.turn(ctx); err != nil {
			return err
		}
	}
	return nil
}

// turn fires one explosion and presents the resulting frame.
func (g *Game) turn(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	if err := g.presenter.Clear(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "clear screen failed")
		return fmt.Errorf("clear screen: %w", err)
	}

	hit, res := g.state.FireExplosion()
	if res.AllyHit {
		g.presenter.Println(MsgAllyHit)
	}

	g.presenter.DrawGrid(g.state.Grid())

	if hit {
		g.presenter.Println(MsgTargetHit)
		g.state.RelocateTarget()
	} else {
		g.presenter.Println(MsgTargetMissed)
	}

	for _, line := range g.state.Status() {
		g.presenter.Println(line)
	}

	span.SetAttributes(
		attribute.Int("turn", res.Turn),
		attribute.Int("explosion.x", int(res.Explosion.X)),
		attribute.Int("explosion.y", int(res.Explosion.Y)),
		attribute.Bool("target_hit", res.TargetHit),
		attribute.Bool("ally_hit", res.AllyHit),
		attribute.Int("penalty", res.Penalty),
		attribute.Int("explosions_left", res.ExplosionsLeft),
		attribute.Int("hits", g.state.Hits),
	)

	g.logger.Debug().
		Int("turn", res.Turn).
		Stringer("explosion", res.Explosion).
		Bool("target_hit", res.TargetHit).
		Bool("ally_hit", res.AllyHit).
		Int("explosions_left", res.ExplosionsLeft).
		Int("hits", g.state.Hits).
		Msg("explosion fired")

	if g.state.IsTerminal() {
		g.presenter.Println(g.state.Outcome())
	}

	return g.presenter.Pause(ctx, g.config.TurnDelay)
}
