package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ghseek/internal/config"
	"ghseek/internal/eventbus"
	"ghseek/internal/github"
	"ghseek/internal/logger"
	"ghseek/internal/search"
	"ghseek/internal/ui"
)

// e2eEnv makes the binary print a marker once the UI is about to start
const e2eEnv = "GHSEEK_E2E_TEST"

// App wires the services and the terminal program together
type App struct {
	cfg       *config.Config
	log       logger.Logger
	logCloser io.Closer
	bus       eventbus.EventBus
	search    *search.Service
	model     *ui.Model
	program   *tea.Program
	unsubs    []func()
}

func bootstrapApp(cfg *config.Config, query string) (*App, error) {
	log, closer, err := logger.New(logger.Config{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return nil, err
	}

	bus := eventbus.New(log)
	client := github.NewClient(cfg.Search.APIURL, cfg.Search.PerPage, cfg.RequestTimeout(), log)
	searchSvc := search.NewService(bus, client, cfg.RequestTimeout(), log)

	model := ui.NewModel(bus, cfg, log)
	if query != "" {
		model.SetQuery(query)
	}

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	app := &App{
		cfg:       cfg,
		log:       log,
		logCloser: closer,
		bus:       bus,
		search:    searchSvc,
		model:     model,
		program:   p,
	}
	app.forwardEvents()
	return app, nil
}

// forwardEvents delivers fetch results to the UI. Events are sent, never
// dropped, since every pending page must be resolved.
func (a *App) forwardEvents() {
	forward := func(e eventbus.DomainEvent) {
		a.program.Send(ui.EventMsg{Event: e})
	}
	a.unsubs = append(a.unsubs,
		a.bus.Subscribe(eventbus.EventPageLoaded, forward),
		a.bus.Subscribe(eventbus.EventPageFailed, forward),
	)
}

// Run blocks until the user quits
func (a *App) Run() error {
	a.log.Infof("starting UI (api=%s per_page=%d debounce=%s)", a.cfg.Search.APIURL, a.cfg.Search.PerPage, a.cfg.Debounce())
	if os.Getenv(e2eEnv) == "1" {
		fmt.Println("__READY__")
	}
	if _, err := a.program.Run(); err != nil {
		a.log.Errorf("error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	a.log.Infof("UI exited normally")
	return nil
}

// Close stops background work and flushes the log
func (a *App) Close() {
	for _, unsub := range a.unsubs {
		unsub()
	}
	a.search.Close()
	a.bus.Close()
	_ = a.log.Sync()
	_ = a.logCloser.Close()
}
