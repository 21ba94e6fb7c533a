package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacostarepublic/folio/pkg/adapters/fs"
	"github.com/dacostarepublic/folio/pkg/core"
)

func TestExtractHeader(t *testing.T) {
	t.Run("Promotes ID And Title", func(t *testing.T) {
		h, err := fs.ExtractHeader([]byte("---\nid: x\ntitle: Foo\n---\n# Body\n"))
		require.NoError(t, err)
		assert.Equal(t, "x", h.ID)
		assert.Equal(t, "Foo", h.Title)
		assert.Equal(t, core.Metadata{"id": "x", "title": "Foo"}, h.Fields)
	})

	t.Run("Keeps Unknown Keys Verbatim", func(t *testing.T) {
		raw := "---\nid: 01\ndate: 2017-03-04\ndraft: true\nauthor: \"Ada\"\n---\n"
		h, err := fs.ExtractHeader([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, "01", h.ID)
		assert.Equal(t, "2017-03-04", h.Fields["date"])
		assert.Equal(t, "true", h.Fields["draft"])
		assert.Equal(t, "Ada", h.Fields["author"])
		assert.Empty(t, h.Title)
	})

	t.Run("Joins Lists And Blanks Nulls", func(t *testing.T) {
		h, err := fs.ExtractHeader([]byte("---\nid: x\ntags: [go, web]\nsummary:\n---\n"))
		require.NoError(t, err)
		assert.Equal(t, "go, web", h.Fields["tags"])
		assert.Equal(t, "", h.Fields["summary"])
	})

	t.Run("Accepts CRLF And BOM", func(t *testing.T) {
		h, err := fs.ExtractHeader([]byte("\xef\xbb\xbf---\r\nid: x\r\ntitle: Win\r\n---\r\nbody"))
		require.NoError(t, err)
		assert.Equal(t, "x", h.ID)
		assert.Equal(t, "Win", h.Title)
	})

	t.Run("Closing Delimiter At EOF", func(t *testing.T) {
		h, err := fs.ExtractHeader([]byte("---\nid: x\n---"))
		require.NoError(t, err)
		assert.Equal(t, "x", h.ID)
	})
}

func TestExtractHeader_Malformed(t *testing.T) {
	cases := map[string]string{
		"No Header":         "# Just a body\n",
		"No Closing":        "---\nid: x\ntitle: Foo\n",
		"Missing ID":        "---\ntitle: Foo\n---\n",
		"Empty Block":       "---\n---\nbody",
		"Blank ID":          "---\nid: \"  \"\n---\n",
		"Not A Mapping":     "---\n- a\n- b\n---\n",
		"Nested Mapping":    "---\nid: x\nauthor:\n  name: Ada\n---\n",
		"Invalid YAML":      "---\nid: [x\n---\n",
		"Delimiter Not Top": "\n---\nid: x\n---\n",
		"Empty":             "",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fs.ExtractHeader([]byte(raw))
			assert.ErrorIs(t, err, core.ErrMalformedHeader)
		})
	}
}

func TestSplitHeader(t *testing.T) {
	header, body, err := fs.SplitHeader([]byte("---\nid: x\n---\nline one\n---\nline two\n"))
	require.NoError(t, err)
	assert.Equal(t, "id: x\n", string(header))
	assert.Equal(t, "line one\n---\nline two\n", string(body))
}
