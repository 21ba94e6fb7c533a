package core

import "errors"

// Common errors.
var (
	ErrRootNotFound     = errors.New("content root does not exist")
	ErrMalformedHeader  = errors.New("malformed metadata header")
	ErrSnapshotCorrupt  = errors.New("snapshot is corrupt")
	ErrSnapshotWrite    = errors.New("failed to write snapshot")
	ErrInvariant        = errors.New("tree invariant violated")
	ErrDocumentNotFound = errors.New("document not found")
)
