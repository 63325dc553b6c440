// Package app hosts the column layout in a bubbletea program.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/smartpack/internal/animation"
	"github.com/llehouerou/smartpack/internal/columns"
	"github.com/llehouerou/smartpack/internal/haptic"
	"github.com/llehouerou/smartpack/internal/keymap"
	"github.com/llehouerou/smartpack/internal/layout"
	"github.com/llehouerou/smartpack/internal/logging"
	"github.com/llehouerou/smartpack/internal/resize"
	"github.com/llehouerou/smartpack/internal/schedule"
	"github.com/llehouerou/smartpack/internal/ui/columnview"
	"github.com/llehouerou/smartpack/internal/ui/geometry"
	"github.com/llehouerou/smartpack/internal/ui/helpbindings"
)

// settleFPS is the frame rate of width transitions.
const settleFPS = 60

// Deps are the collaborators of the root model.
type Deps struct {
	Store     *columns.Store
	Scheduler schedule.Scheduler
	Logger    *zap.Logger
	Haptics   *haptic.Feedback // nil disables haptic feedback
	Cell      geometry.Cell    // zero selects 8x16

	// Column bodies; nil selects the sample trip.
	Content map[layout.ColumnID][]string
}

// Model is the root application model. Its reference fields are shared
// between copies; they are only touched from Update.
type Model struct {
	store    *columns.Store
	logger   *zap.Logger
	haptics  *haptic.Feedback
	viewport *columns.ViewportWatcher
	resizers map[layout.ColumnID]*resize.Controller
	surface  *surface
	settle   *animation.Settle
	keys     *keymap.Resolver
	cell     geometry.Cell

	panels   map[layout.ColumnID]*columnview.Model
	help     *helpbindings.Model
	showHelp bool

	width  int
	height int

	focusColumn layout.ColumnID
	focusHandle int // index into the current frame's handles, -1 for none
	hoverHandle int // -1 for none
	dragging    *resize.Controller
	ticking     bool
	quitting    bool
	notice      string // config reload problems
}

// surface is the global pointer state the resize controllers drive.
type surface struct {
	resizing bool
}

// SetResizing implements resize.Surface.
func (s *surface) SetResizing(active bool) {
	s.resizing = active
}

// New builds the root model. One resize controller is created per column
// for its right edge; a handle between two columns drives the left one.
func New(d Deps) Model {
	if d.Scheduler == nil {
		d.Scheduler = schedule.Real{}
	}
	if d.Cell.Width <= 0 || d.Cell.Height <= 0 {
		d.Cell = geometry.Cell{Width: 8, Height: 16}
	}
	if d.Content == nil {
		d.Content = sampleContent()
	}
	logger := logging.OrNop(d.Logger).Named("app")

	m := Model{
		store:       d.Store,
		logger:      logger,
		haptics:     d.Haptics,
		viewport:    columns.NewViewportWatcher(d.Store, d.Scheduler, schedule.ResizeDebounce),
		resizers:    make(map[layout.ColumnID]*resize.Controller, len(layout.AllColumns)),
		surface:     &surface{},
		settle:      animation.NewSettle(settleFPS),
		keys:        keymap.NewResolver(keymap.Bindings),
		cell:        d.Cell,
		panels:      make(map[layout.ColumnID]*columnview.Model, len(layout.AllColumns)),
		focusColumn: layout.PackingChecklist,
		focusHandle: -1,
		hoverHandle: -1,
	}

	for _, id := range layout.AllColumns {
		m.resizers[id] = resize.New(d.Store, id, resize.Right, resize.Options{
			Scheduler: d.Scheduler,
			Surface:   m.surface,
			Haptics:   d.Haptics,
			Logger:    logger,
		})
		p := columnview.New(id)
		p.SetContent(d.Content[id])
		m.panels[id] = &p
	}

	help := helpbindings.New(keymap.LayoutContexts...)
	m.help = &help

	m.settle.Snap(d.Store.Widths())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close stops the controllers, the viewport watcher and the store. It is
// called when the program exits.
func (m Model) Close() {
	for _, c := range m.resizers {
		c.Close()
	}
	m.viewport.Stop()
	m.store.Close()
}
