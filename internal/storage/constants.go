package storage

// DefaultSlot is the save slot used when none is configured
const DefaultSlot = "default"

// File permissions for state documents
const (
	DirPermissions  = 0o755
	FilePermissions = 0o600
)
