package keymap

// Resolver maps a key to an action within one context. The same key can
// mean different things per context: esc leaves a resize handle but closes
// the help popup.
type Resolver struct {
	actions map[Context]map[string]Action
}

// NewResolver indexes bindings by context. When a key is bound twice in the
// same context the first binding wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{actions: make(map[Context]map[string]Action)}
	for _, b := range bindings {
		keys := r.actions[b.Context]
		if keys == nil {
			keys = make(map[string]Action)
			r.actions[b.Context] = keys
		}
		for _, k := range b.Keys {
			if _, taken := keys[k]; !taken {
				keys[k] = b.Action
			}
		}
	}
	return r
}

// Resolve returns the action bound to key in ctx.
func (r *Resolver) Resolve(ctx Context, key string) (Action, bool) {
	a, ok := r.actions[ctx][key]
	return a, ok
}
