package bot

import (
	"context"
	"sync"

	coretelegram "github.com/m3rciful/shiftbot/core/telegram"
	"github.com/m3rciful/shiftbot/core/telegram/commands"
	"github.com/m3rciful/shiftbot/core/telegram/router"
	"github.com/m3rciful/shiftbot/store"
)

// App wires the roster engine, the document store, and the Telegram runtime.
// All update handling is serialized through mu so the document never sees
// concurrent read-modify-write cycles.
type App struct {
	cfg   *Config
	store store.Store
	mu    sync.Mutex
}

// New creates an App backed by the given document store.
func New(cfg *Config, st store.Store) *App {
	return &App{cfg: cfg, store: st}
}

// TelegramRunOptions builds the runtime wiring for the bot.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	reg.RegisterCommand("/start", commands.Command{
		Description: "Начало работы",
		Handler:     a.handleStart,
	})
	reg.SetTextFallback(a.handleText)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{})
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{})...)

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
		OnStop: func(ctx context.Context, rt coretelegram.Runtime) error {
			return a.store.Close()
		},
	}, nil
}
