package pool

import "os"

// Config controls pool construction.
type Config struct {
	// BaseEntries is the capacity of the first block, in cells. Every later
	// block doubles the previous capacity. The default of 64 keeps the first
	// mapping within a small page for typical element sizes.
	BaseEntries int

	// Checked enables the misuse assertions that cost more than a word
	// compare: free-to-wrong-pool containment scans and the panic on closing
	// a pool with live allocations. The cheap double-free sentinel check is
	// always on regardless.
	Checked bool
}

// DefaultConfig is used when New receives a nil config. Checked defaults on
// when ONSEN_POOL_CHECK is set in the environment.
var DefaultConfig = Config{
	BaseEntries: 64,
	Checked:     os.Getenv("ONSEN_POOL_CHECK") != "",
}

// logGrow enables block-growth logging to stderr.
var logGrow = os.Getenv("ONSEN_LOG_ALLOC") != ""
