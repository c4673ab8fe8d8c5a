package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/projboard/internal/model"
)

func sample() []model.Project {
	return []model.Project{
		{ID: "a", Title: "Build API", Description: "Implement REST endpoints", People: 3, Status: model.Active},
		{ID: "b", Title: "Ship", Description: "Release it", People: 1, Status: model.Finished},
		{ID: "c", Title: "Docs", Description: "Write docs", People: 2, Status: model.Active},
	}
}

func TestGroupKeepsOrder(t *testing.T) {
	doc := Group(sample())
	require.Len(t, doc.Active, 2)
	assert.Equal(t, "a", doc.Active[0].ID)
	assert.Equal(t, "c", doc.Active[1].ID)
	require.Len(t, doc.Finished, 1)
	assert.Equal(t, "b", doc.Finished[0].ID)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sample()))

	var got map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got["active"], 2)
	assert.Equal(t, "finished", got["finished"][0]["status"])
	assert.Equal(t, float64(3), got["active"][0]["people"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, nil))

	var got map[string][]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Contains(t, got, "active")
	assert.Empty(t, got["active"])
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "xml", nil))
}
