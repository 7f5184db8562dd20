package client

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Saichiiro/astoria-sub001/internal/errors"
)

func TestItemsValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: Anneau
  modifiers:
    - stat: Force
      value: 1
- name: Bottes
  modifiers: '[{"stat":"vitesse","value":2}]'
`), 0o600))

	items, err := itemsValue(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, []any{map[string]any{"stat": "Force", "value": float64(1)}}, items[0].(map[string]any)["modifiers"])
	assert.Equal(t, `[{"stat":"vitesse","value":2}]`, items[1].(map[string]any)["modifiers"])

	_, err = structpb.NewStruct(map[string]any{"items": items})
	assert.NoError(t, err, "catalog items must be representable as a struct")
}

func TestPrintResponse(t *testing.T) {
	resp, err := structpb.NewStruct(map[string]any{"badges": []any{"+5 Magie"}})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printResponse(&out, resp))
	assert.Contains(t, out.String(), `"+5 Magie"`)
}

func TestCallError(t *testing.T) {
	grpcErr := errors.ToGRPCError(errors.NotFound("inventory not found").WithMeta("character_id", "c1"))

	err := callError("get inventory", grpcErr)
	assert.Contains(t, err.Error(), "failed to get inventory: inventory not found")
	assert.Contains(t, err.Error(), "c1")

	plain := callError("save inventory", errors.ToGRPCError(errors.Internal("boom")))
	assert.Equal(t, "failed to save inventory: INTERNAL: boom", plain.Error())
}
