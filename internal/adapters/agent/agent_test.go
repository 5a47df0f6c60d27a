package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"cat-breed-info/internal/domain/breeds"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(err error) *breeds.Service {
	src := breeds.SourceFunc(func(context.Context) (breeds.Catalog, error) {
		if err != nil {
			return nil, err
		}
		return breeds.Catalog{
			breeds.RecordFromMap(map[string]any{"name": "Siamese", "origin": "Thailand"}),
			breeds.RecordFromMap(map[string]any{"name": "Maine Coon", "origin": "United States"}),
		}, nil
	})
	return breeds.NewService(breeds.NewCache(src, breeds.CacheNone))
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestBreedTool_Describe(t *testing.T) {
	tool := NewBreedTool(testService(nil))

	s, ok, err := tool.Describe(context.Background(), "siam")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, s, "Siamese\nOrigin: Thailand")

	s, ok, err = tool.Describe(context.Background(), "bengal")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, s)
}

func TestBreedTool_DescribeFetchError(t *testing.T) {
	tool := NewBreedTool(testService(&breeds.FetchError{Op: "get", Err: errors.New("timeout")}))

	_, ok, err := tool.Describe(context.Background(), "siamese")
	assert.False(t, ok)
	assert.True(t, breeds.IsFetchError(err))
}

func TestBreedTool_Handle(t *testing.T) {
	tool := NewBreedTool(testService(nil))
	assert.Equal(t, BreedToolName, tool.Definition().Name)

	res, err := tool.Handle(context.Background(), callRequest(BreedToolName, map[string]any{"breed_name": "maine"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Maine Coon")

	res, err = tool.Handle(context.Background(), callRequest(BreedToolName, map[string]any{"breed_name": "bengal"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, `no breed found for "bengal"`, resultText(t, res))
}

func TestBreedNode_Run(t *testing.T) {
	node := NewBreedNode(testService(nil))
	ctx := context.Background()

	res, err := node.Run(ctx, map[string]any{"breed_name": "siamese"})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "Siamese", res.BreedName)
	require.NotNil(t, res.Summary)
	assert.Contains(t, *res.Summary, "Origin: Thailand")
	require.NotNil(t, res.Raw)
	assert.Empty(t, res.Error)

	// fallback a "breed"
	res, err = node.Run(ctx, map[string]any{"breed": "maine"})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "Maine Coon", res.BreedName)

	// breed_name en blanco no cuenta: se usa "breed", y el nombre va recortado
	res, err = node.Run(ctx, map[string]any{"breed_name": "   ", "breed": "  bengal "})
	require.NoError(t, err)
	assert.Equal(t, NodeResult{BreedName: "bengal"}, res)

	res, err = node.Run(ctx, map[string]any{"breed_name": "bengal"})
	require.NoError(t, err)
	assert.Equal(t, NodeResult{BreedName: "bengal"}, res)

	res, err = node.Run(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, NodeResult{Error: "No breed_name provided"}, res)
}

func TestBreedNode_RunFetchError(t *testing.T) {
	node := NewBreedNode(testService(&breeds.FetchError{Op: "decode", Err: breeds.ErrUnexpectedFormat}))

	_, err := node.Run(context.Background(), map[string]any{"breed_name": "siamese"})
	assert.ErrorIs(t, err, breeds.ErrUnexpectedFormat)
}

func TestBreedNode_HandleJSON(t *testing.T) {
	node := NewBreedNode(testService(nil))

	res, err := node.Handle(context.Background(), callRequest(BreedNodeName, map[string]any{"breed_name": "bengal"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"found":false,"breed_name":"bengal","summary":null,"raw":null}`, resultText(t, res))

	res, err = node.Handle(context.Background(), callRequest(BreedNodeName, map[string]any{"breed_name": "siamese"}))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, true, out["found"])
	assert.Equal(t, map[string]any{"name": "Siamese", "origin": "Thailand"}, out["raw"])
}

func TestNewMCPServer_RegistersTools(t *testing.T) {
	s := NewMCPServer(testService(nil), "test")

	resp := s.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name":"`+BreedToolName+`"`)
	assert.Contains(t, string(b), `"name":"`+BreedNodeName+`"`)
}
