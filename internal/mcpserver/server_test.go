package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huectl/internal/cli"
	"huectl/internal/notation"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New("test", func() (notation.Config, error) { return notation.DefaultConfig(), nil })
}

func request(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return textContent.Text
}

func TestTools(t *testing.T) {
	s := newTestServer(t)
	var names []string
	for _, tool := range s.Tools() {
		names = append(names, tool.Tool.Name)
	}
	assert.Equal(t, []string{"color_convert", "color_parse", "notation_list"}, names)
}

func TestHandleConvert(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleConvert(context.Background(), request("color_convert", map[string]interface{}{
		"color": "hsl(0, 100%, 50%)",
		"to":    "hex, name",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var res cli.Result
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &res))
	assert.Equal(t, "hsl", res.Source)
	require.Len(t, res.Renderings, 2)
	assert.Equal(t, "#FF0000", res.Renderings[0].Value)
	assert.Equal(t, "red", res.Renderings[1].Value)
}

func TestHandleConvertErrors(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"missing color", map[string]interface{}{}, "color parameter is required"},
		{"bad source", map[string]interface{}{"color": "#fff", "from": "rgbw"}, `failed to get color notation from "rgbw"`},
		{"bad target", map[string]interface{}{"color": "#fff", "to": "hex,nope"}, `failed to get color notation from "nope"`},
		{"bad color", map[string]interface{}{"color": "hsl(0, 150%, 50%)", "from": "hsl"}, "saturation 150% is out of range [0, 100]"},
		{"non-string", map[string]interface{}{"color": "#fff", "to": 3}, "to must be a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.handleConvert(context.Background(), request("color_convert", tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}

func TestHandleParse(t *testing.T) {
	s := newTestServer(t)
	result, err := s.handleParse(context.Background(), request("color_parse", map[string]interface{}{
		"color": "cornflowerblue",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got parsed
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, "name", got.Notation)
	assert.Equal(t, "#6495ED", got.Hex)
	assert.Equal(t, [4]int{100, 149, 237, 255}, got.RGBA8)
	assert.Equal(t, 1.0, got.A)
}

func TestHandleNotationList(t *testing.T) {
	s := newTestServer(t)
	result, err := s.handleNotationList(context.Background(), request("notation_list", nil))
	require.NoError(t, err)

	var infos []cli.NotationInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &infos))
	assert.Len(t, infos, len(notation.All()))
	assert.Equal(t, "oklch", infos[len(infos)-1].Notation)
}

func TestConfigErrorIsReported(t *testing.T) {
	s := New("test", func() (notation.Config, error) { return notation.Config{}, errors.New("bad file") })
	result, err := s.handleNotationList(context.Background(), request("notation_list", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Configuration error: bad file")
}
