// Package folio is the composition root for Folio.
//
// Folio indexes a directory of Markdown documents into a content tree. Every
// directory becomes a Branch, except a directory holding a document, which
// becomes a Leaf carrying that document's header fields, its path relative to
// the root and a hash of its content. The tree is persisted as cached.json in
// the root and served from there until the snapshot is purged.
//
// Usage:
//
//	svc, err := folio.New("./content",
//		folio.WithIgnore("drafts/**"),
//		folio.WithLogger(logger),
//	)
//
//	tree, err := svc.Tree(ctx)
//	doc, err := svc.DocumentWithSource(ctx, "getting-started")
package folio
