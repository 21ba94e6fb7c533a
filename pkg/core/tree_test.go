package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacostarepublic/folio/pkg/core"
)

func TestTree_RoundTrip(t *testing.T) {
	tree := sampleTree()

	data, err := core.MarshalTree(tree)
	require.NoError(t, err)

	decoded, err := core.UnmarshalTree(data)
	require.NoError(t, err)
	assert.Equal(t, tree, decoded)

	again, err := core.MarshalTree(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestTree_Schema(t *testing.T) {
	data, err := core.MarshalTree(sampleTree())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "content", raw["name"])

	children := raw["children"].([]any)
	require.Len(t, children, 3)

	leaf := children[1].(map[string]any)
	assert.NotContains(t, leaf, "children")
	article := leaf["article"].(map[string]any)
	assert.Equal(t, "y", article["id"])
	assert.Equal(t, "about/index.md", article["relativePath"])
	assert.Equal(t, "bb", article["contentHash"])
	assert.NotContains(t, article, "sourceText")

	empty := children[2].(map[string]any)
	assert.Equal(t, []any{}, empty["children"])
}

func TestTree_Unmarshal_Invalid(t *testing.T) {
	cases := map[string]string{
		"Neither":   `{"name":"x"}`,
		"Both":      `{"children":[],"article":{"id":"a"}}`,
		"Null":      `null`,
		"NullChild": `{"name":"x","children":[null]}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := core.UnmarshalTree([]byte(input))
			assert.ErrorIs(t, err, core.ErrInvariant)
		})
	}

	t.Run("Truncated", func(t *testing.T) {
		_, err := core.UnmarshalTree([]byte(`{"name":"x","children":[`))
		require.Error(t, err)
		assert.NotErrorIs(t, err, core.ErrInvariant)
	})
}

func TestTree_Marshal_NilChild(t *testing.T) {
	_, err := core.MarshalTree(&core.Branch{Name: "x", Children: []core.Node{nil}})
	assert.ErrorIs(t, err, core.ErrInvariant)

	_, err = core.MarshalTree(nil)
	assert.ErrorIs(t, err, core.ErrInvariant)
}

func TestTree_Branch_UnmarshalJSON(t *testing.T) {
	var b core.Branch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"r","children":[{"article":{"id":"a"}}]}`), &b))
	assert.Equal(t, "r", b.Name)
	require.Len(t, b.Children, 1)
	leaf, ok := b.Children[0].(*core.Leaf)
	require.True(t, ok)
	assert.Equal(t, "a", leaf.Document.ID)

	var l core.Leaf
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"name":"r","children":[]}`), &l), core.ErrInvariant)
}

func TestWalk_Order(t *testing.T) {
	var ids []string
	err := core.Walk(sampleTree(), func(d core.Document) error {
		ids = append(ids, d.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, ids)

	branches, leaves := core.Count(sampleTree())
	assert.Equal(t, 3, branches)
	assert.Equal(t, 2, leaves)
}

func TestWalk_NoDocuments(t *testing.T) {
	tree := &core.Branch{Name: "r", Children: []core.Node{
		&core.Branch{Name: "a", Children: []core.Node{}},
	}}
	calls := 0
	require.NoError(t, core.Walk(tree, func(core.Document) error { calls++; return nil }))
	assert.Zero(t, calls)

	var typedNil *core.Leaf
	assert.ErrorIs(t, core.Walk(typedNil, func(core.Document) error { return nil }), core.ErrInvariant)
}
