// Document is the central entity of the domain.
package core

// Metadata holds the key-value pairs declared in a document header.
// Values are kept as the literal text found in the header.
type Metadata map[string]string

// Header is the parsed metadata block at the top of a document.
// ID and Title are promoted from Fields; Fields still carries them.
type Header struct {
	ID     string
	Title  string
	Fields Metadata
}

// Document is a single indexed file.
// It is immutable once built, except for Source which is only filled on a copy
// returned by Service.DocumentWithSource.
type Document struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Metadata     Metadata `json:"metadata"`
	RelativePath string   `json:"relativePath"`
	ContentHash  string   `json:"contentHash"`
	Source       string   `json:"sourceText,omitempty"`
}

// WithSource returns a copy of d carrying the full file text.
func (d Document) WithSource(source string) Document {
	meta := make(Metadata, len(d.Metadata))
	for k, v := range d.Metadata {
		meta[k] = v
	}
	d.Metadata = meta
	d.Source = source
	return d
}
