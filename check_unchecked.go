//go:build freelist_unchecked

package freelist

const checked = false
