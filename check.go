//go:build !freelist_unchecked

package freelist

// checked enables cursor and slot assertions. Build with -tags freelist_unchecked
// to drop them from optimized binaries.
const checked = true
