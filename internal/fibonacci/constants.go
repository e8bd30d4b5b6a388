package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// CancelCheckInterval is how many terms FContext and the Kind methods
	// produce between two checks of their context.
	CancelCheckInterval = 4096

	// DefaultKind is the kind used when none is requested.
	DefaultKind = "uint64"
)
