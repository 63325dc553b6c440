package keymap

// Context is a group of bindings that are active together. A key may be
// bound in several contexts; the root model decides which context sees it
// first.
type Context string

const (
	ContextGlobal  Context = "global"
	ContextColumns Context = "columns"
	ContextHandle  Context = "handle"
	ContextHelp    Context = "help"
)

// LayoutContexts are the contexts of the column layout, in dispatch order.
var LayoutContexts = []Context{ContextGlobal, ContextColumns, ContextHandle}

var contextLabels = map[Context]string{
	ContextGlobal:  "Global",
	ContextColumns: "Columns",
	ContextHandle:  "Resize Handles",
	ContextHelp:    "Help",
}

// Label is the heading of the context in the help popup.
func (c Context) Label() string {
	if l, ok := contextLabels[c]; ok {
		return l
	}
	return string(c)
}

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     Context
}

// Bindings contains all key bindings, used for dispatch and help generation.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionResetLayout, []string{"r", "0"}, "Reset column layout", ContextGlobal},
	{ActionReduceMotion, []string{"m"}, "Toggle reduced motion", ContextGlobal},

	{ActionToggleTripDetails, []string{"1"}, "Show/hide trip details", ContextColumns},
	{ActionTogglePackingChecklist, []string{"2"}, "Show/hide packing checklist", ContextColumns},
	{ActionToggleSuggestions, []string{"3"}, "Show/hide suggestions", ContextColumns},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", ContextColumns},
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", ContextColumns},
	{ActionPageUp, []string{"pgup"}, "Page up", ContextColumns},
	{ActionPageDown, []string{"pgdown"}, "Page down", ContextColumns},

	{ActionFocusNextHandle, []string{"tab"}, "Focus next resize handle", ContextHandle},
	{ActionFocusPrevHandle, []string{"shift+tab"}, "Focus previous resize handle", ContextHandle},
	{ActionBlurHandle, []string{"esc"}, "Leave resize handle", ContextHandle},
	{ActionResizeLeft, []string{"left", "h"}, "Move handle left", ContextHandle},
	{ActionResizeRight, []string{"right", "l"}, "Move handle right", ContextHandle},
	{ActionResizeLeftLarge, []string{"shift+left", "H"}, "Move handle left (large step)", ContextHandle},
	{ActionResizeRightLarge, []string{"shift+right", "L"}, "Move handle right (large step)", ContextHandle},

	{ActionCloseHelp, []string{"?", "esc", "q"}, "Close help", ContextHelp},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", ContextHelp},
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", ContextHelp},
	{ActionPageUp, []string{"pgup"}, "Page up", ContextHelp},
	{ActionPageDown, []string{"pgdown"}, "Page down", ContextHelp},
}

// Section is the bindings of one context, in declaration order.
type Section struct {
	Context  Context
	Bindings []Binding
}

// Sections groups bindings by context, in the order the contexts are given.
// Contexts without bindings are left out.
func Sections(bindings []Binding, contexts ...Context) []Section {
	var out []Section
	for _, ctx := range contexts {
		sec := Section{Context: ctx}
		for _, b := range bindings {
			if b.Context == ctx {
				sec.Bindings = append(sec.Bindings, b)
			}
		}
		if len(sec.Bindings) > 0 {
			out = append(out, sec)
		}
	}
	return out
}
