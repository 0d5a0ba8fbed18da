// Package callbacks holds a store whose members take callbacks and out pointers.
package callbacks

// User is a stored record.
type User struct {
	ID   int
	Name string
}

// Store keeps users and processes orders asynchronously.
type Store interface {
	// TryGet writes the value for key to out and reports whether it was found.
	TryGet(key string, out *int) bool
	// Process handles an order and reports its status through done.
	Process(id int, done func(status string))
	Save(user User) error
}

// Lookup returns the value for key, or fallback when the store has none.
func Lookup(store Store, key string, fallback int) int {
	var value int
	if store.TryGet(key, &value) {
		return value
	}

	return fallback
}

// Ship processes orders and collects their statuses.
func Ship(store Store, ids ...int) []string {
	statuses := make([]string, 0, len(ids))

	for _, id := range ids {
		store.Process(id, func(status string) { statuses = append(statuses, status) })
	}

	return statuses
}
