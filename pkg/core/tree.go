package core

import (
	"encoding/json"
	"fmt"
)

// Node is an element of the content tree: either a *Branch or a *Leaf.
type Node interface {
	node()
}

// Branch is a directory that did not produce a document.
type Branch struct {
	Name     string
	Children []Node
}

// Leaf wraps the single document found in a directory.
type Leaf struct {
	Document Document
}

func (*Branch) node() {}
func (*Leaf) node()   {}

type branchJSON struct {
	Name     string `json:"name"`
	Children []Node `json:"children"`
}

type leafJSON struct {
	Article Document `json:"article"`
}

// nodeJSON accepts both node shapes so the variant can be decided after decoding.
type nodeJSON struct {
	Name     *string           `json:"name"`
	Children []json.RawMessage `json:"children"`
	Article  *Document         `json:"article"`
}

// MarshalJSON encodes the branch as {"name": ..., "children": [...]}.
func (b *Branch) MarshalJSON() ([]byte, error) {
	children := b.Children
	if children == nil {
		children = []Node{}
	}
	for i, c := range children {
		if isNilNode(c) {
			return nil, fmt.Errorf("%w: branch %q has an empty child at %d", ErrInvariant, b.Name, i)
		}
	}
	return json.Marshal(branchJSON{Name: b.Name, Children: children})
}

// UnmarshalJSON decodes a branch, dispatching each child to its variant.
func (b *Branch) UnmarshalJSON(data []byte) error {
	n, err := UnmarshalTree(data)
	if err != nil {
		return err
	}
	br, ok := n.(*Branch)
	if !ok {
		return fmt.Errorf("%w: expected a branch, found a leaf", ErrInvariant)
	}
	*b = *br
	return nil
}

// MarshalJSON encodes the leaf as {"article": {...}}.
func (l *Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(leafJSON{Article: l.Document})
}

// UnmarshalJSON decodes a leaf.
func (l *Leaf) UnmarshalJSON(data []byte) error {
	n, err := UnmarshalTree(data)
	if err != nil {
		return err
	}
	lf, ok := n.(*Leaf)
	if !ok {
		return fmt.Errorf("%w: expected a leaf, found a branch", ErrInvariant)
	}
	*l = *lf
	return nil
}

// MarshalTree encodes a tree in the snapshot format.
func MarshalTree(n Node) ([]byte, error) {
	if isNilNode(n) {
		return nil, fmt.Errorf("%w: cannot encode an empty tree", ErrInvariant)
	}
	return json.Marshal(n)
}

// UnmarshalTree decodes a tree from the snapshot format.
// A node must carry either an article or a children list, never both and never neither.
func UnmarshalTree(data []byte) (Node, error) {
	var w nodeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	switch {
	case w.Article != nil && w.Children != nil:
		return nil, fmt.Errorf("%w: node has both article and children", ErrInvariant)
	case w.Article != nil:
		return &Leaf{Document: *w.Article}, nil
	case w.Children != nil:
		b := &Branch{Children: make([]Node, 0, len(w.Children))}
		if w.Name != nil {
			b.Name = *w.Name
		}
		for _, raw := range w.Children {
			child, err := UnmarshalTree(raw)
			if err != nil {
				return nil, err
			}
			b.Children = append(b.Children, child)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: article and children both null", ErrInvariant)
	}
}

// Walk visits every document in the tree depth-first, in child order.
// It stops at the first error returned by fn.
func Walk(n Node, fn func(Document) error) error {
	switch v := n.(type) {
	case *Leaf:
		if v == nil {
			return fmt.Errorf("%w: article and children both null", ErrInvariant)
		}
		return fn(v.Document)
	case *Branch:
		if v == nil {
			return fmt.Errorf("%w: article and children both null", ErrInvariant)
		}
		for _, c := range v.Children {
			if err := Walk(c, fn); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return fmt.Errorf("%w: article and children both null", ErrInvariant)
	default:
		return fmt.Errorf("%w: unknown node type %T", ErrInvariant, n)
	}
}

// Count returns the number of branches and leaves in the tree.
func Count(n Node) (branches, leaves int) {
	switch v := n.(type) {
	case *Leaf:
		if v != nil {
			leaves++
		}
	case *Branch:
		if v == nil {
			return
		}
		branches++
		for _, c := range v.Children {
			b, l := Count(c)
			branches += b
			leaves += l
		}
	}
	return
}

func isNilNode(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Branch:
		return v == nil
	}
	return false
}
