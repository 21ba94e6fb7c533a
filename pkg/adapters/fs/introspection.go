package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path             string     `json:"path"`
	SnapshotPath     string     `json:"snapshot_path"`
	SnapshotPresent  bool       `json:"snapshot_present"`
	Ignore           []string   `json:"ignore"`
	Concurrency      int        `json:"concurrency"`
	RebuildOnCorrupt bool       `json:"rebuild_on_corrupt"`
	Builds           int        `json:"builds"`
	SnapshotHits     int        `json:"snapshot_hits"`
	LastBuild        *time.Time `json:"last_build,omitempty"`
	Documents        int        `json:"documents"`
	Branches         int        `json:"branches"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	present := r.snapshot.Exists()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:             r.Path,
		SnapshotPath:     r.snapshot.Path,
		SnapshotPresent:  present,
		Ignore:           append([]string(nil), r.ignore...),
		Concurrency:      r.config.Concurrency,
		RebuildOnCorrupt: r.config.RebuildOnCorrupt,
		Builds:           r.builds,
		SnapshotHits:     r.hits,
		LastBuild:        r.lastBuild,
		Documents:        r.documents,
		Branches:         r.branches,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) recordBuild(branches, documents int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.builds++
	r.lastBuild = &now
	r.branches = branches
	r.documents = documents
}

func (r *Repository) recordHit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hits++
}
