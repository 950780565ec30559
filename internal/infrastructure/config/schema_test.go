package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schemaID, doc["$id"])

	body := string(data)
	for _, key := range []string{"on_focus_loss", "on_click_outside", "on_pointer_leave", "history_size", "action_id", "min_width"} {
		assert.Contains(t, body, `"`+key+`"`)
	}
}

func TestWriteSchemaFile(t *testing.T) {
	mgr, err := NewManagerForDir(t.TempDir())
	require.NoError(t, err)

	path, err := mgr.WriteSchemaFile()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "findpopup configuration")
}
