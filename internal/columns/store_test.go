package columns

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/llehouerou/smartpack/internal/layout"
	"github.com/llehouerou/smartpack/internal/schedule"
	"github.com/llehouerou/smartpack/internal/state"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestStore(t *testing.T, opts Options) (*Store, *state.Mock, *schedule.Manual) {
	t.Helper()
	mock, ok := opts.Storage.(*state.Mock)
	if !ok || mock == nil {
		mock = state.NewMock()
		opts.Storage = mock
	}
	sched := schedule.NewManual()
	opts.Scheduler = sched
	s := New(opts)
	t.Cleanup(s.Close)
	return s, mock, sched
}

func desktop() Viewport { return Viewport{Width: 1280, Height: 800} }

func storedVisibility(t *testing.T, m *state.Mock) layout.Visibility {
	t.Helper()
	raw, ok := m.Raw(state.KeyColumnVisibility)
	require.True(t, ok)
	var v layout.Visibility
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func storedWidths(t *testing.T, m *state.Mock) layout.Widths {
	t.Helper()
	raw, ok := m.Raw(state.KeyColumnWidths)
	require.True(t, ok)
	var w layout.Widths
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	return w
}

func TestNew_Defaults(t *testing.T) {
	s, mock, _ := newTestStore(t, Options{Viewport: desktop()})

	assert.Equal(t, layout.DefaultVisibility, s.Visibility())
	assert.Equal(t, layout.DefaultWidths, s.Widths())
	assert.Equal(t, layout.Desktop, s.DeviceType())
	assert.False(t, s.IsAnimating())
	assert.False(t, s.PrefersReducedMotion())
	assert.Equal(t, layout.DefaultVisibility, storedVisibility(t, mock))
	assert.NoError(t, s.LastError())
}

func TestNew_UnknownViewportIsDesktop(t *testing.T) {
	s, _, _ := newTestStore(t, Options{})

	assert.Equal(t, layout.Desktop, s.DeviceType())
	assert.True(t, s.Viewport().IsZero())
	assert.Equal(t, s.Widths(), s.ResponsiveWidths())
	assert.True(t, s.CanFitMinimumWidths(layout.AllColumns[:]))

	s.EnforceHorizontalConstraints()
	assert.Equal(t, layout.DefaultVisibility, s.Visibility())
}

func TestNew_MergesStoredAndInitial(t *testing.T) {
	mock := state.NewMock()
	require.NoError(t, mock.SetItem(state.KeyColumnVisibility, `{"suggestions":false}`))
	require.NoError(t, mock.SetItem(state.KeyColumnWidths, `{"tripDetails":500,"suggestions":100}`))

	visible := true
	width := 420.0
	s, _, _ := newTestStore(t, Options{
		Storage:           mock,
		Viewport:          desktop(),
		InitialVisibility: layout.VisibilityPatch{TripDetails: &visible},
		InitialWidths:     layout.WidthsPatch{PackingChecklist: &width},
	})

	assert.Equal(t, layout.Visibility{TripDetails: true, PackingChecklist: true, Suggestions: false}, s.Visibility())
	assert.Equal(t, layout.Widths{TripDetails: 500, PackingChecklist: 420, Suggestions: layout.MinColumnWidth}, s.Widths(),
		"stored widths below the minimum are raised")
}

func TestNew_CorruptStorageFallsBackToDefaults(t *testing.T) {
	mock := state.NewMock()
	require.NoError(t, mock.SetItem(state.KeyColumnVisibility, `{not json`))

	s, _, _ := newTestStore(t, Options{Storage: mock, Viewport: desktop()})

	assert.Equal(t, layout.DefaultVisibility, s.Visibility())
}

func TestNew_EnforcesRulesOfInitialDevice(t *testing.T) {
	s, mock, _ := newTestStore(t, Options{Viewport: Viewport{Width: 400, Height: 800}})

	assert.Equal(t, layout.MobilePortrait, s.DeviceType())
	assert.Equal(t, layout.Visibility{PackingChecklist: true}, s.Visibility())
	assert.Equal(t, s.Visibility(), storedVisibility(t, mock))
}

func TestToggleColumn_DesktopHidesSuggestions(t *testing.T) {
	s, mock, sched := newTestStore(t, Options{Viewport: desktop()})

	s.ToggleColumn(layout.Suggestions)

	assert.Equal(t, layout.Visibility{TripDetails: true, PackingChecklist: true}, s.Visibility())
	assert.True(t, s.IsAnimating())
	assert.Equal(t, s.Visibility(), storedVisibility(t, mock))

	sched.Advance(499 * time.Millisecond)
	assert.True(t, s.IsAnimating())
	sched.Advance(time.Millisecond)
	assert.False(t, s.IsAnimating())
}

func TestToggleColumn_LastColumnStaysVisible(t *testing.T) {
	s, _, _ := newTestStore(t, Options{
		Viewport:          desktop(),
		InitialVisibility: patch(false, true, false),
	})

	assert.False(t, s.CanToggle(layout.PackingChecklist))
	assert.True(t, s.CanToggle(layout.TripDetails))

	s.ToggleColumn(layout.PackingChecklist)
	assert.Equal(t, layout.Visibility{PackingChecklist: true}, s.Visibility())
}

func TestToggleColumn_ReducedMotionSkipsAnimation(t *testing.T) {
	s, _, sched := newTestStore(t, Options{Viewport: desktop(), ReducedMotion: true})

	s.ToggleColumn(layout.TripDetails)

	assert.False(t, s.Visibility().TripDetails)
	assert.False(t, s.IsAnimating())
	assert.Zero(t, sched.Pending())
	assert.Zero(t, s.TransitionStyles().Duration)
}

func TestToggleColumn_SequencesKeepInvariants(t *testing.T) {
	viewports := []Viewport{desktop(), {Width: 700, Height: 900}, {Width: 600, Height: 400}, {Width: 400, Height: 800}}
	for _, vp := range viewports {
		s, _, _ := newTestStore(t, Options{Viewport: vp})
		for i := range 60 {
			s.ToggleColumn(layout.AllColumns[(i*7+i/3)%3])

			n := s.VisibleColumnCount()
			assert.GreaterOrEqual(t, n, 1)
			switch s.DeviceType() {
			case layout.MobilePortrait:
				assert.LessOrEqual(t, n, 1)
			case layout.MobileLandscape:
				assert.LessOrEqual(t, n, 2)
			}
		}
	}
}

func TestSetColumnWidth_Clamps(t *testing.T) {
	s, mock, _ := newTestStore(t, Options{Viewport: desktop()})

	s.SetColumnWidth(layout.TripDetails, 480)
	assert.InDelta(t, 480.0, s.Widths().TripDetails, 0)

	s.SetColumnWidth(layout.TripDetails, 100)
	assert.InDelta(t, layout.MinColumnWidth, s.Widths().TripDetails, 0)

	s.SetColumnWidth(layout.Suggestions, -5)
	assert.InDelta(t, layout.MinColumnWidth, s.Widths().Suggestions, 0)

	assert.Equal(t, s.Widths(), storedWidths(t, mock))
}

func TestSetColumnWidth_InfinityStillPersists(t *testing.T) {
	s, mock, _ := newTestStore(t, Options{Viewport: desktop()})

	s.SetColumnWidth(layout.PackingChecklist, math.Inf(1))

	assert.InDelta(t, layout.MinColumnWidth, s.Widths().PackingChecklist, 0)
	assert.NoError(t, s.LastError())
	assert.Equal(t, s.Widths(), storedWidths(t, mock))
}

func TestSetColumnWidth_HiddenColumnKeepsWidth(t *testing.T) {
	s, _, _ := newTestStore(t, Options{Viewport: desktop()})

	s.SetColumnWidth(layout.Suggestions, 410)
	s.ToggleColumn(layout.Suggestions)
	s.ToggleColumn(layout.Suggestions)

	assert.InDelta(t, 410.0, s.Widths().Suggestions, 0)
}

func TestResetLayout(t *testing.T) {
	s, mock, _ := newTestStore(t, Options{Viewport: desktop()})
	s.ToggleColumn(layout.TripDetails)
	s.SetColumnWidth(layout.PackingChecklist, 600)

	s.ResetLayout()

	assert.Equal(t, layout.DefaultVisibility, s.Visibility())
	assert.Equal(t, layout.DefaultWidths, s.Widths())
	assert.Equal(t, layout.DefaultWidths, storedWidths(t, mock))
}

func TestResetLayout_MobilePortrait(t *testing.T) {
	s, _, _ := newTestStore(t, Options{
		Viewport:          Viewport{Width: 400, Height: 800},
		InitialVisibility: patch(true, false, false),
	})
	require.Equal(t, layout.Visibility{TripDetails: true}, s.Visibility())

	s.ResetLayout()

	assert.Equal(t, layout.Visibility{PackingChecklist: true}, s.Visibility())
}

func TestSetViewport_MobilePortraitCollapse(t *testing.T) {
	s, mock, _ := newTestStore(t, Options{Viewport: desktop()})

	s.SetViewport(400, 800)

	assert.Equal(t, layout.MobilePortrait, s.DeviceType())
	assert.Equal(t, layout.Visibility{PackingChecklist: true}, s.Visibility())
	assert.Equal(t, s.Visibility(), storedVisibility(t, mock))
}

func TestSetViewport_MobileLandscapeHidesSuggestions(t *testing.T) {
	s, _, _ := newTestStore(t, Options{Viewport: desktop()})

	s.SetViewport(620, 400)

	assert.Equal(t, layout.MobileLandscape, s.DeviceType())
	assert.Equal(t, layout.Visibility{TripDetails: true, PackingChecklist: true}, s.Visibility())
}

func TestSetViewport_HorizontalConstraints(t *testing.T) {
	s, _, _ := newTestStore(t, Options{Viewport: desktop()})

	s.SetViewport(700, 900)

	assert.Equal(t, layout.Tablet, s.DeviceType())
	assert.Equal(t, layout.Visibility{TripDetails: true, PackingChecklist: true}, s.Visibility())
}

func TestSetViewport_NoShowingBackOnGrow(t *testing.T) {
	s, _, _ := newTestStore(t, Options{Viewport: desktop()})

	s.SetViewport(700, 900)
	s.SetViewport(1600, 900)

	assert.False(t, s.Visibility().Suggestions)
}

func TestSetViewport_SameSizeIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t, Options{Viewport: desktop()})
	calls := 0
	s.OnChange(func() { calls++ })

	s.SetViewport(1280, 800)

	assert.Zero(t, calls)
}

func TestResponsiveWidths_900(t *testing.T) {
	s, _, _ := newTestStore(t, Options{Viewport: Viewport{Width: 900, Height: 700}})

	w := s.ResponsiveWidths()

	assert.InDelta(t, 288.5, w.PackingChecklist, 1e-9)
	assert.InDelta(t, 281.75, w.TripDetails, 1e-9)
	assert.InDelta(t, 281.75, w.Suggestions, 1e-9)
	assert.Equal(t, layout.DefaultWidths, s.Widths(), "responsive widths are derived, not stored")
}

func TestQueries(t *testing.T) {
	s, _, _ := newTestStore(t, Options{
		Viewport:          desktop(),
		InitialVisibility: patch(true, false, true),
	})

	assert.Equal(t, 2, s.VisibleColumnCount())
	assert.Equal(t, []layout.ColumnID{layout.TripDetails, layout.Suggestions}, s.VisibleColumns())
	assert.Equal(t, []layout.ColumnID{layout.Suggestions, layout.TripDetails, layout.PackingChecklist}, s.ShrinkPriority())
	assert.True(t, s.CanFitMinimumWidths(layout.AllColumns[:]))

	got := s.ShrinkPriority()
	got[0] = layout.PackingChecklist
	assert.Equal(t, layout.Suggestions, s.ShrinkPriority()[0], "callers get a copy")
}

func TestEnforceBusinessRules(t *testing.T) {
	mock := state.NewMock()
	require.NoError(t, mock.SetItem(state.KeyColumnVisibility,
		`{"tripDetails":false,"packingChecklist":false,"suggestions":false}`))

	s, _, _ := newTestStore(t, Options{Storage: mock, Viewport: desktop()})
	assert.Equal(t, layout.Visibility{PackingChecklist: true}, s.Visibility())

	s.EnforceBusinessRules()
	assert.Equal(t, layout.Visibility{PackingChecklist: true}, s.Visibility())
}

func TestWriteFailure_KeepsMemoryState(t *testing.T) {
	s, mock, _ := newTestStore(t, Options{Viewport: desktop()})
	mock.WriteErr = errors.New("quota exceeded")

	s.ToggleColumn(layout.Suggestions)

	assert.False(t, s.Visibility().Suggestions)
	require.Error(t, s.LastError())
	assert.Equal(t, layout.DefaultVisibility, storedVisibility(t, mock))

	mock.WriteErr = nil
	s.ToggleColumn(layout.Suggestions)
	assert.NoError(t, s.LastError())
	assert.Equal(t, layout.DefaultVisibility, storedVisibility(t, mock))
}

func TestSetReducedMotion_EndsAnimation(t *testing.T) {
	s, _, _ := newTestStore(t, Options{Viewport: desktop()})
	s.ToggleColumn(layout.Suggestions)
	require.True(t, s.IsAnimating())

	s.SetReducedMotion(true)

	assert.False(t, s.IsAnimating())
	assert.True(t, s.PrefersReducedMotion())
}

func TestSetAnimating(t *testing.T) {
	s, _, _ := newTestStore(t, Options{Viewport: desktop()})

	s.SetAnimating(true)
	assert.True(t, s.IsAnimating())
	assert.Equal(t, "width, opacity, transform", s.TransitionStyles().WillChange)

	s.SetAnimating(false)
	assert.False(t, s.IsAnimating())
	assert.Equal(t, "auto", s.TransitionStyles().WillChange)
}

func TestOnChange(t *testing.T) {
	s, _, sched := newTestStore(t, Options{Viewport: desktop()})
	calls := 0
	s.OnChange(func() { calls++ })

	s.ToggleColumn(layout.Suggestions) // animation start + visibility
	assert.Equal(t, 2, calls)

	sched.Advance(time.Second) // animation end
	assert.Equal(t, 3, calls)

	s.SetColumnWidth(layout.TripDetails, 350) // unchanged
	assert.Equal(t, 3, calls)

	s.SetColumnWidth(layout.TripDetails, 360)
	assert.Equal(t, 4, calls)
}

func TestViewportWatcher_Debounces(t *testing.T) {
	s, _, sched := newTestStore(t, Options{Viewport: desktop()})
	w := NewViewportWatcher(s, sched, 0)
	defer w.Stop()

	w.Update(1000, 800)
	sched.Advance(100 * time.Millisecond)
	w.Update(400, 800)
	sched.Advance(149 * time.Millisecond)
	assert.Equal(t, desktop(), s.Viewport())

	sched.Advance(time.Millisecond)
	assert.Equal(t, Viewport{Width: 400, Height: 800}, s.Viewport())
	assert.Equal(t, layout.MobilePortrait, s.DeviceType())
}

func TestViewportWatcher_Stop(t *testing.T) {
	s, _, sched := newTestStore(t, Options{Viewport: desktop()})
	w := NewViewportWatcher(s, sched, 0)

	w.Update(400, 800)
	w.Stop()
	sched.Advance(time.Second)

	assert.Equal(t, desktop(), s.Viewport())
}

func patch(trip, packing, suggestions bool) layout.VisibilityPatch {
	return layout.VisibilityPatch{
		TripDetails:      &trip,
		PackingChecklist: &packing,
		Suggestions:      &suggestions,
	}
}
