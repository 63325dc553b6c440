// Package columns holds the column layout store: the single source of truth
// for which columns are visible, how wide they are and which device class
// the viewport falls in.
package columns

import (
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/smartpack/internal/animation"
	"github.com/llehouerou/smartpack/internal/layout"
	"github.com/llehouerou/smartpack/internal/logging"
	"github.com/llehouerou/smartpack/internal/schedule"
	"github.com/llehouerou/smartpack/internal/state"
)

// Viewport is the host surface size in layout units. The zero Viewport
// means the size is unknown yet.
type Viewport struct {
	Width  float64
	Height float64
}

// IsZero reports whether the viewport size is unknown.
func (v Viewport) IsZero() bool {
	return v.Width <= 0 && v.Height <= 0
}

// Options configures a Store. Zero values select the defaults.
type Options struct {
	Storage   state.Storage
	Scheduler schedule.Scheduler
	Logger    *zap.Logger

	Breakpoints       layout.Breakpoints
	Metrics           layout.Metrics
	AnimationDuration time.Duration
	ReducedMotion     bool

	// Applied over the stored layout at start-up.
	InitialVisibility layout.VisibilityPatch
	InitialWidths     layout.WidthsPatch

	Viewport Viewport
}

// Store is not safe for concurrent use. Every method, and every callback
// scheduled through the Scheduler, must run on the host's event loop.
type Store struct {
	storage state.Storage
	logger  *zap.Logger
	bp      layout.Breakpoints
	metrics layout.Metrics
	anim    *animation.Animator

	visibility layout.Visibility
	widths     layout.Widths
	device     layout.DeviceType
	viewport   Viewport

	lastErr  error
	onChange func()
}

// New loads the persisted layout, merges it over the defaults and the
// initial overrides, and applies the visibility rules of the current device.
func New(opts Options) *Store {
	if opts.Storage == nil {
		opts.Storage = state.NewMock()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = schedule.Real{}
	}
	if opts.Breakpoints == (layout.Breakpoints{}) {
		opts.Breakpoints = layout.DefaultBreakpoints
	}
	if opts.Metrics == (layout.Metrics{}) {
		opts.Metrics = layout.DefaultMetrics()
	}

	s := &Store{
		storage:  opts.Storage,
		logger:   logging.OrNop(opts.Logger).Named("columns"),
		bp:       opts.Breakpoints,
		metrics:  opts.Metrics,
		anim:     animation.New(opts.Scheduler, opts.AnimationDuration, opts.ReducedMotion),
		viewport: opts.Viewport,
	}
	s.anim.OnChange(func(bool) { s.notify() })

	s.device = s.classify()

	loaded := state.LoadVisibility(s.storage, opts.InitialVisibility)
	s.visibility = layout.EnforceVisibilityRules(loaded, s.device)

	w := state.LoadWidths(s.storage, opts.InitialWidths)
	for _, id := range layout.AllColumns {
		w = w.With(id, s.metrics.ClampWidth(w.Get(id)))
	}
	s.widths = w

	s.persist(s.visibility, s.widths)

	s.logger.Debug("layout loaded",
		zap.String("device", string(s.device)),
		zap.Any("visibility", s.visibility),
		zap.Any("widths", s.widths))

	return s
}

// OnChange registers fn to be called after every state change. Replaces any
// previous subscriber.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// Close cancels pending animation timers.
func (s *Store) Close() {
	s.anim.Close()
}

// Read model.

func (s *Store) Visibility() layout.Visibility { return s.visibility }

func (s *Store) Widths() layout.Widths { return s.widths }

func (s *Store) DeviceType() layout.DeviceType { return s.device }

func (s *Store) Viewport() Viewport { return s.viewport }

func (s *Store) Breakpoints() layout.Breakpoints { return s.bp }

func (s *Store) Metrics() layout.Metrics { return s.metrics }

func (s *Store) IsAnimating() bool { return s.anim.IsAnimating() }

func (s *Store) PrefersReducedMotion() bool { return s.anim.PrefersReducedMotion() }

func (s *Store) AnimationDuration() time.Duration { return s.anim.Duration() }

// LastError returns the error of the most recent failed write, or nil when
// the last write succeeded.
func (s *Store) LastError() error {
	return s.lastErr
}

// Actions.

// ToggleColumn flips id, corrects the result for the current device and
// opens an animation window.
func (s *Store) ToggleColumn(id layout.ColumnID) {
	s.anim.Trigger()
	s.setVisibility(layout.Toggle(s.visibility, id, s.device))
}

// SetColumnWidth stores width for id, raised to the minimum column width.
func (s *Store) SetColumnWidth(id layout.ColumnID, width float64) {
	s.setWidths(s.widths.With(id, s.metrics.ClampWidth(width)))
}

// ResetLayout restores the default widths and the default visibility as
// allowed on the current device.
func (s *Store) ResetLayout() {
	v := layout.EnforceVisibilityRules(layout.DefaultVisibility, s.device)
	w := layout.DefaultWidths
	if v == s.visibility && w == s.widths {
		return
	}
	s.visibility = v
	s.widths = w
	s.persist(v, w)
	s.logger.Info("layout reset", zap.String("device", string(s.device)))
	s.notify()
}

// EnforceBusinessRules re-applies the visibility rules of the current device.
func (s *Store) EnforceBusinessRules() {
	s.setVisibility(layout.EnforceVisibilityRules(s.visibility, s.device))
}

// EnforceHorizontalConstraints hides columns in shrink priority order until
// the visible ones fit the viewport at minimum width. It does nothing while
// the viewport is unknown.
func (s *Store) EnforceHorizontalConstraints() {
	if s.viewport.IsZero() {
		return
	}
	v, changed := s.metrics.EnforceHorizontalConstraints(s.visibility, s.viewport.Width)
	if !changed {
		return
	}
	s.logger.Debug("columns hidden to fit viewport",
		zap.Float64("viewport_width", s.viewport.Width),
		zap.Any("visibility", v))
	s.setVisibility(v)
}

// SetViewport records a new surface size, reclassifies the device, re-runs
// the visibility rules when the device class changed and finally fits the
// visible columns into the new width.
func (s *Store) SetViewport(width, height float64) {
	vp := Viewport{Width: width, Height: height}
	if vp == s.viewport {
		return
	}
	s.viewport = vp

	prev := s.device
	s.device = s.classify()
	if s.device != prev {
		s.logger.Debug("device type changed",
			zap.String("from", string(prev)),
			zap.String("to", string(s.device)))
		s.visibility = s.applyVisibility(layout.EnforceVisibilityRules(s.visibility, s.device))
	}

	if v, changed := s.metrics.EnforceHorizontalConstraints(s.visibility, width); changed {
		s.visibility = s.applyVisibility(v)
	}
	s.notify()
}

// SetReducedMotion is the entry point for live motion preference changes.
func (s *Store) SetReducedMotion(reduced bool) {
	if reduced == s.anim.PrefersReducedMotion() {
		return
	}
	s.anim.SetReducedMotion(reduced)
	s.notify()
}

// SetAnimating forces the animation flag.
func (s *Store) SetAnimating(animating bool) {
	s.anim.SetAnimating(animating)
}

// TriggerAnimation opens an animation window unless reduced motion is on.
func (s *Store) TriggerAnimation() bool {
	return s.anim.Trigger()
}

// Queries.

func (s *Store) VisibleColumnCount() int {
	return s.visibility.Count()
}

// VisibleColumns returns the visible columns in display order.
func (s *Store) VisibleColumns() []layout.ColumnID {
	return s.visibility.Columns()
}

// ResponsiveWidths returns the widths the visible columns should be
// rendered at. While the viewport is unknown it returns the stored widths.
func (s *Store) ResponsiveWidths() layout.Widths {
	if s.viewport.IsZero() {
		return s.widths
	}
	return s.metrics.ResponsiveWidths(s.visibility, s.widths, s.viewport.Width)
}

// CanFitMinimumWidths reports whether cols fit the viewport at minimum width.
// It is true while the viewport is unknown.
func (s *Store) CanFitMinimumWidths(cols []layout.ColumnID) bool {
	if s.viewport.IsZero() {
		return true
	}
	return s.metrics.CanFitMinimumWidths(cols, s.viewport.Width)
}

// ShrinkPriority returns the order in which columns are given up when space runs out.
func (s *Store) ShrinkPriority() []layout.ColumnID {
	out := make([]layout.ColumnID, len(layout.ShrinkPriority))
	copy(out, layout.ShrinkPriority[:])
	return out
}

// TransitionStyles describes the transition columns should apply now.
func (s *Store) TransitionStyles() animation.Styles {
	return s.anim.TransitionStyles()
}

// CanToggle reports whether toggling id is meaningful: hiding the last
// visible column is not.
func (s *Store) CanToggle(id layout.ColumnID) bool {
	return !s.visibility.Get(id) || s.visibility.Count() > 1
}

func (s *Store) classify() layout.DeviceType {
	if s.viewport.IsZero() {
		return layout.Desktop
	}
	return layout.Classify(s.viewport.Width, s.viewport.Height, s.bp)
}

func (s *Store) setVisibility(v layout.Visibility) {
	if v == s.visibility {
		return
	}
	s.visibility = s.applyVisibility(v)
	s.notify()
}

// applyVisibility persists v when it differs from the current visibility and returns it.
func (s *Store) applyVisibility(v layout.Visibility) layout.Visibility {
	if v != s.visibility {
		s.record(state.SaveVisibility(s.storage, v), state.KeyColumnVisibility)
	}
	return v
}

func (s *Store) setWidths(w layout.Widths) {
	if w == s.widths {
		return
	}
	s.widths = w
	s.record(state.SaveWidths(s.storage, w), state.KeyColumnWidths)
	s.notify()
}

func (s *Store) persist(v layout.Visibility, w layout.Widths) {
	s.record(state.SaveLayout(s.storage, v, w), state.KeyColumnVisibility, state.KeyColumnWidths)
}

func (s *Store) record(err error, keys ...string) {
	s.lastErr = err
	if err != nil {
		s.logger.Warn("layout write failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
