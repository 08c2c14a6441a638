package repositories

// SnapshotStore persists the serialized state snapshot under a single
// key. Implementations: SQLite file (default) and Postgres.
type SnapshotStore interface {
	// Load returns the stored snapshot bytes. found is false on a
	// fresh store.
	Load(key string) (data []byte, found bool, err error)
	Save(key string, data []byte) error
	Close() error
}
