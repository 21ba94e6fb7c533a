package fs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dacostarepublic/folio/pkg/core"
	"gopkg.in/yaml.v3"
)

const headerDelimiter = "---"

var utf8BOM = []byte("\xef\xbb\xbf")

// SplitHeader separates the front matter block from the document body.
// The text must open with a "---" line; the block ends at the next "---" line.
// The returned slices alias raw.
func SplitHeader(raw []byte) (header, body []byte, err error) {
	data := bytes.TrimPrefix(raw, utf8BOM)

	first, rest, found := bytes.Cut(data, []byte("\n"))
	if !found || !isDelimiter(first) {
		return nil, nil, fmt.Errorf("%w: missing opening %q", core.ErrMalformedHeader, headerDelimiter)
	}

	for pos := 0; pos <= len(rest); {
		line, next, found := bytes.Cut(rest[pos:], []byte("\n"))
		if isDelimiter(line) {
			return rest[:pos], next, nil
		}
		if !found {
			break
		}
		pos += len(line) + 1
	}

	return nil, nil, fmt.Errorf("%w: missing closing %q", core.ErrMalformedHeader, headerDelimiter)
}

// ExtractHeader parses the front matter at the top of a document.
//
// The block is a YAML mapping. Scalar values are kept as written, a list of
// scalars is joined with ", " and a null value becomes "". Nested mappings are
// rejected. The "id" key is required.
func ExtractHeader(raw []byte) (core.Header, error) {
	block, _, err := SplitHeader(raw)
	if err != nil {
		return core.Header{}, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(block, &doc); err != nil {
		return core.Header{}, fmt.Errorf("%w: %v", core.ErrMalformedHeader, err)
	}

	fields := make(core.Metadata)
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		mapping := resolve(doc.Content[0])
		if mapping.Kind != yaml.MappingNode {
			return core.Header{}, fmt.Errorf("%w: header is not a key-value block (line %d)", core.ErrMalformedHeader, mapping.Line)
		}
		for i := 0; i+1 < len(mapping.Content); i += 2 {
			key := resolve(mapping.Content[i])
			if key.Kind != yaml.ScalarNode {
				return core.Header{}, fmt.Errorf("%w: non-scalar key at line %d", core.ErrMalformedHeader, key.Line)
			}
			value, err := scalarText(mapping.Content[i+1])
			if err != nil {
				return core.Header{}, fmt.Errorf("%w: key %q: %v", core.ErrMalformedHeader, key.Value, err)
			}
			fields[key.Value] = value
		}
	}

	id := strings.TrimSpace(fields["id"])
	if id == "" {
		return core.Header{}, fmt.Errorf("%w: missing id", core.ErrMalformedHeader)
	}

	return core.Header{
		ID:     id,
		Title:  strings.TrimSpace(fields["title"]),
		Fields: fields,
	}, nil
}

func isDelimiter(line []byte) bool {
	return string(bytes.TrimRight(line, " \t\r")) == headerDelimiter
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func scalarText(n *yaml.Node) (string, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "", nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return "", fmt.Errorf("nested value at line %d", item.Line)
			}
			items = append(items, item.Value)
		}
		return strings.Join(items, ", "), nil
	default:
		return "", fmt.Errorf("nested value at line %d", n.Line)
	}
}
