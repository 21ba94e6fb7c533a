package core

import "context"

// TreeSource defines the contract for producing the content tree.
// Adhering to this interface allows the core to be independent of where the
// documents live (local filesystem, in-memory fixtures, etc).
type TreeSource interface {
	// Tree returns the full content tree.
	// An implementation may return a usable tree together with a non-nil error
	// when only persisting the tree failed (see ErrSnapshotWrite).
	Tree(ctx context.Context) (Node, error)

	// ReadSource returns the full text of the document at relPath.
	// relPath uses forward slashes and is relative to the content root.
	ReadSource(ctx context.Context, relPath string) (string, error)
}

// SnapshotPurger is implemented by sources that persist the tree and can
// discard that copy to force a rebuild.
type SnapshotPurger interface {
	PurgeSnapshot(ctx context.Context) error
}
