package engine

// Options configures an Engine.
type Options struct {
	// HashSizeMB sizes the transposition table, in megabytes.
	HashSizeMB int
}

// DefaultOptions returns the Options used when none are supplied.
func DefaultOptions() Options {
	return Options{HashSizeMB: 32}
}

// Stats reports search progress for one BestMove call.
type Stats struct {
	Nodes uint64
	Depth int
}
