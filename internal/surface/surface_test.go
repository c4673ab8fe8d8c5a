package surface

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibraryHasViewTemplates(t *testing.T) {
	lib, err := DefaultLibrary()
	require.NoError(t, err)
	assert.Equal(t, []string{"project-input", "project-list", "single-project"}, lib.IDs())

	form, err := lib.Template("project-input")
	require.NoError(t, err)
	for _, id := range []string{"title", "description", "people"} {
		f := form.Find(id)
		require.NotNil(t, f, id)
		assert.Equal(t, KindField, f.Kind)
	}
}

func TestMissingTemplate(t *testing.T) {
	lib, err := DefaultLibrary()
	require.NoError(t, err)
	_, err = lib.Template("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCloneIsIndependent(t *testing.T) {
	orig := &Node{Kind: KindItem, Children: []*Node{{ID: "a", Kind: KindText, Text: "x"}}}
	fired := false
	orig.On(EventSubmit, func() { fired = true })

	c := orig.Clone()
	c.Find("a").SetText("changed")
	c.Append(&Node{Kind: KindText})

	assert.Equal(t, "x", orig.Find("a").Text)
	assert.Len(t, orig.Children, 1)
	assert.False(t, c.Dispatch(EventSubmit), "handlers are not cloned")
	assert.False(t, fired)
}

func TestPageInsertPositions(t *testing.T) {
	p := NewPage("app")
	require.NoError(t, p.Insert(&Node{ID: "list"}, BeforeEnd, "app"))
	require.NoError(t, p.Insert(&Node{ID: "form"}, AfterBegin, "app"))
	require.NoError(t, p.Insert(&Node{ID: "list2"}, BeforeEnd, "app"))

	app := p.Find("app")
	var ids []string
	for _, c := range app.Children {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"form", "list", "list2"}, ids)

	require.NoError(t, p.Insert(&Node{ID: "row"}, BeforeEnd, "list"))
	assert.NotNil(t, p.Find("row"))

	err := p.Insert(&Node{}, BeforeEnd, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDispatch(t *testing.T) {
	p := NewPage("app")
	form := &Node{ID: "user-input", Kind: KindForm}
	require.NoError(t, p.Insert(form, AfterBegin, "app"))

	var calls []int
	form.On(EventSubmit, func() { calls = append(calls, 1) })
	form.On(EventSubmit, func() { calls = append(calls, 2) })

	require.NoError(t, p.Dispatch("user-input", EventSubmit))
	assert.Equal(t, []int{1, 2}, calls)
	assert.Error(t, p.Dispatch("ghost", EventSubmit))
}

func TestLoadLibraryOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	doc := `
templates:
  single-project:
    kind: item
    children:
      - id: project-title
        kind: heading
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	lib, err := LoadLibrary(path)
	require.NoError(t, err)
	row, err := lib.Template("single-project")
	require.NoError(t, err)
	assert.Len(t, row.Children, 1)

	_, err = lib.Template("project-list")
	assert.NoError(t, err, "untouched templates come from the defaults")
}

func TestParseLibraryRejectsBadDocuments(t *testing.T) {
	_, err := ParseLibrary([]byte("templates: {}"))
	assert.Error(t, err)
	_, err = ParseLibrary([]byte("templates:\n  x:\n    text: hi\n"))
	assert.Error(t, err)
	_, err = ParseLibrary([]byte(":::"))
	assert.Error(t, err)

	_, err = LoadLibrary(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
