// internal/state/interface.go
package state

// Storage is the local-storage contract used by the layout persistence.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	SetItems(items map[string]string) error
	RemoveItem(key string) error
}

// Verify Manager and Mock implement Storage at compile time.
var (
	_ Storage = (*Manager)(nil)
	_ Storage = (*Mock)(nil)
)
