package config

import (
	"github.com/knadh/koanf/providers/file"
)

// Watcher reloads the configuration when one of its files changes.
type Watcher struct {
	providers []*file.File
}

// Watch calls onChange with a freshly loaded Config every time one of the
// files c was loaded from changes, and onError when reloading fails. It
// returns nil and does nothing when c was not loaded from any file.
func Watch(c *Config, onChange func(*Config), onError func(error)) (*Watcher, error) {
	if len(c.sources) == 0 {
		return nil, nil //nolint:nilnil // nothing to watch is valid
	}

	paths := c.sources
	w := &Watcher{}
	for _, path := range paths {
		p := file.Provider(path)
		err := p.Watch(func(_ interface{}, err error) {
			if err != nil {
				if onError != nil {
					onError(err)
				}
				return
			}
			cfg, err := LoadFrom(paths...)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				return
			}
			onChange(cfg)
		})
		if err != nil {
			w.Close()
			return nil, err
		}
		w.providers = append(w.providers, p)
	}
	return w, nil
}

// Close stops watching. It is safe on a nil Watcher.
func (w *Watcher) Close() {
	if w == nil {
		return
	}
	for _, p := range w.providers {
		_ = p.Unwatch()
	}
	w.providers = nil
}
