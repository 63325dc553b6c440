// Package resize implements drag and keyboard resizing of a single column
// edge.
package resize

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/smartpack/internal/haptic"
	"github.com/llehouerou/smartpack/internal/layout"
	"github.com/llehouerou/smartpack/internal/logging"
	"github.com/llehouerou/smartpack/internal/schedule"
)

// Edge is the side of a column a handle sits on.
type Edge int

const (
	Left Edge = iota
	Right
)

func (e Edge) String() string {
	if e == Left {
		return "left"
	}
	return "right"
}

// Arrow is a keyboard resize direction.
type Arrow int

const (
	ArrowLeft Arrow = iota
	ArrowRight
)

// Keyboard steps in layout units.
const (
	KeyStep      = 10.0
	KeyStepLarge = 50.0
)

// CloseThreshold is the fraction of the initial width below which a drag
// hides the column instead of resizing it.
const CloseThreshold = 0.5

// State of a drag gesture.
type State int

const (
	Idle State = iota
	Dragging
)

// Target is the layout store a controller writes to.
type Target interface {
	Widths() layout.Widths
	Visibility() layout.Visibility
	DeviceType() layout.DeviceType
	Metrics() layout.Metrics
	SetColumnWidth(id layout.ColumnID, width float64)
	ToggleColumn(id layout.ColumnID)
	TriggerAnimation() bool
}

// Surface is the host's global pointer state.
type Surface interface {
	// SetResizing shows the column-resize cursor and suppresses text
	// selection while active.
	SetResizing(active bool)
}

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	Scheduler schedule.Scheduler
	Surface   Surface
	Haptics   *haptic.Feedback
	Logger    *zap.Logger

	Throttle time.Duration // default: schedule.DragThrottle
	Frame    time.Duration // default: schedule.FrameInterval
}

// Controller resizes one (column, edge) pair. Like the store it drives, it
// must only be used from the host's event loop.
type Controller struct {
	column  layout.ColumnID
	edge    Edge
	target  Target
	surface Surface
	haptics *haptic.Feedback
	logger  *zap.Logger

	throttle *schedule.Throttler[float64]
	frame    *schedule.Frame[float64]

	state        State
	startX       float64
	initialWidth float64
	closed       bool
}

// New returns an idle controller for the given column edge.
func New(target Target, column layout.ColumnID, edge Edge, opts Options) *Controller {
	if opts.Scheduler == nil {
		opts.Scheduler = schedule.Real{}
	}
	if opts.Throttle <= 0 {
		opts.Throttle = schedule.DragThrottle
	}
	if opts.Frame <= 0 {
		opts.Frame = schedule.FrameInterval
	}

	c := &Controller{
		column:  column,
		edge:    edge,
		target:  target,
		surface: opts.Surface,
		haptics: opts.Haptics,
		logger: logging.OrNop(opts.Logger).Named("resize").With(
			zap.Stringer("column", column),
			zap.Stringer("edge", edge)),
	}
	c.frame = schedule.NewFrame(opts.Scheduler, opts.Frame, c.apply)
	c.throttle = schedule.NewThrottler(opts.Scheduler, opts.Throttle, c.frame.Request)
	return c
}

func (c *Controller) Column() layout.ColumnID { return c.column }
func (c *Controller) Edge() Edge              { return c.edge }
func (c *Controller) State() State            { return c.state }
func (c *Controller) Dragging() bool          { return c.state == Dragging }

// Enabled reports whether the handle is offered at all. Columns stack on
// mobile-portrait, so there is nothing to resize there.
func (c *Controller) Enabled() bool {
	return !c.closed && c.target.DeviceType() != layout.MobilePortrait
}

// Start begins a drag at pointer position x. It returns false when the
// controller is disabled or already dragging.
func (c *Controller) Start(x float64) bool {
	if !c.Enabled() || c.state == Dragging {
		return false
	}
	c.state = Dragging
	c.startX = x
	c.initialWidth = c.target.Widths().Get(c.column)
	c.setResizing(true)
	c.haptics.DragStart()
	c.logger.Debug("drag started",
		zap.Float64("x", x),
		zap.Float64("initial_width", c.initialWidth))
	return true
}

// Move reports a new pointer position. Positions are throttled, then
// coalesced onto the next frame before they reach the store.
func (c *Controller) Move(x float64) {
	if c.state != Dragging {
		return
	}
	c.throttle.Call(x)
}

// End finishes the drag, applying the last reported position first.
func (c *Controller) End() {
	if c.state != Dragging {
		return
	}
	c.throttle.Flush()
	c.throttle.Stop()
	c.frame.Flush()

	// the flushed frame may have crossed the close threshold
	if c.state != Dragging {
		return
	}
	c.finish()
	c.haptics.DragEnd()
	c.target.TriggerAnimation()
	c.logger.Debug("drag ended", zap.Float64("width", c.target.Widths().Get(c.column)))
}

// Cancel finishes the drag without applying positions that have not
// reached the store yet.
func (c *Controller) Cancel() {
	if c.state != Dragging {
		return
	}
	c.throttle.Stop()
	c.frame.Cancel()
	c.finish()
	c.haptics.DragEnd()
	c.target.TriggerAnimation()
}

// Close tears the controller down. Scheduled work is dropped and later
// calls are ignored.
func (c *Controller) Close() {
	c.throttle.Stop()
	c.frame.Cancel()
	if c.state == Dragging {
		c.finish()
	}
	c.closed = true
}

// Key resizes by one keyboard step. Arrows point in screen direction, so
// they are inverted for a left-edge handle.
func (c *Controller) Key(arrow Arrow, shift bool) {
	if !c.Enabled() {
		return
	}
	step := KeyStep
	if shift {
		step = KeyStepLarge
	}
	if arrow == ArrowLeft {
		step = -step
	}
	if c.edge == Left {
		step = -step
	}
	current := c.target.Widths().Get(c.column)
	c.target.SetColumnWidth(c.column, math.Max(current+step, c.target.Metrics().MinColumnWidth))
	c.haptics.Trigger(haptic.Selection)
}

// WidthAt returns the width a drag currently at x asks for, before the
// close threshold and the minimum width are applied.
func (c *Controller) WidthAt(x float64) float64 {
	delta := x - c.startX
	if c.edge == Left {
		delta = -delta
	}
	return c.initialWidth + delta
}

func (c *Controller) apply(x float64) {
	if c.state != Dragging {
		return
	}
	width := c.WidthAt(x)

	if width < c.initialWidth*CloseThreshold {
		c.logger.Debug("close threshold crossed",
			zap.Float64("width", width),
			zap.Float64("initial_width", c.initialWidth))
		c.throttle.Stop()
		c.frame.Cancel()
		c.finish()
		if c.target.Visibility().Get(c.column) {
			c.target.ToggleColumn(c.column)
		}
		c.haptics.Threshold()
		return
	}

	c.target.SetColumnWidth(c.column, math.Max(width, c.target.Metrics().MinColumnWidth))
}

func (c *Controller) finish() {
	c.state = Idle
	c.setResizing(false)
}

func (c *Controller) setResizing(active bool) {
	if c.surface != nil {
		c.surface.SetResizing(active)
	}
}
