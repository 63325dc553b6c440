package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/smartpack/internal/columns"
	"github.com/llehouerou/smartpack/internal/config"
	"github.com/llehouerou/smartpack/internal/haptic"
	"github.com/llehouerou/smartpack/internal/logging"
	"github.com/llehouerou/smartpack/internal/state"
	"github.com/llehouerou/smartpack/internal/ui/geometry"
)

// Run starts the terminal UI and blocks until it exits.
func Run(cfg *config.Config, storage state.Storage, logger *zap.Logger) error {
	logger = logging.OrNop(logger)
	sched := newLoopScheduler()

	lc := cfg.GetLayoutConfig()
	store := columns.New(columns.Options{
		Storage:           storage,
		Scheduler:         sched,
		Logger:            logger,
		Breakpoints:       lc.Breakpoints,
		Metrics:           cfg.Metrics(),
		AnimationDuration: cfg.AnimationDuration(),
		ReducedMotion:     cfg.ReduceMotion(),
	})
	out := newTerminalOutput(os.Stdout)
	feedback := haptic.New(haptic.NewTerminal(out), cfg.HapticsEnabled(), func() bool {
		return store.DeviceType().IsMobile()
	})

	m := New(Deps{
		Store:     store,
		Scheduler: sched,
		Logger:    logger,
		Haptics:   feedback,
		Cell:      geometry.Cell{Width: lc.CellWidth, Height: lc.CellHeight},
	})

	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen(), tea.WithMouseAllMotion())
	sched.attach(p.Send)

	w, err := config.Watch(cfg,
		func(c *config.Config) { p.Send(configReloadedMsg{cfg: c}) },
		func(err error) { p.Send(configErrorMsg{err: err}) },
	)
	if err != nil {
		logger.Warn("config watch unavailable", zap.Error(err))
	}
	defer w.Close()

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
