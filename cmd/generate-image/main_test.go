package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestOutputResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	res := mcpgo.NewToolResultText("Image generated successfully. data:image/png;base64,AAAA")

	require.NoError(t, outputResult(&buf, res, "json"))

	assert.Equal(t, "text", gjson.GetBytes(buf.Bytes(), "content.0.type").String())
	assert.Contains(t, gjson.GetBytes(buf.Bytes(), "content.0.text").String(), "data:image/png;base64,AAAA")
}

func TestOutputResult_YAML(t *testing.T) {
	var buf bytes.Buffer
	res := mcpgo.NewToolResultText("Error: No image data returned from the API.")

	require.NoError(t, outputResult(&buf, res, "YAML"))

	out := buf.String()
	assert.Contains(t, out, "type: text")
	assert.Contains(t, out, "No image data returned")
}

func TestOutputResult_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := outputResult(&buf, mcpgo.NewToolResultText("x"), "xml")
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func executeRun(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("ENV_FILE", t.TempDir()+"/missing.env")
	t.Setenv("GEMINI_API_KEY", "")

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--log-level", "error", "run"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRun_RequiresPrompt(t *testing.T) {
	out, err := executeRun(t, "--prompt", "   ")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--prompt is required")
	assert.Empty(t, out)
}

func TestRun_MissingCredential(t *testing.T) {
	out, err := executeRun(t, "--prompt", "a red circle")

	require.NoError(t, err)
	content := gjson.Get(out, "content")
	require.Len(t, content.Array(), 1)
	assert.Contains(t, gjson.Get(out, "content.0.text").String(), "not configured")
}

func TestRun_GeneratesThroughGemini(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	keys := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case keys <- r.Header.Get("x-goog-api-key"):
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"candidates":[{"content":{"role":"model","parts":[{"inlineData":{"mimeType":"image/png","data":%q}}]}}]}`,
			base64.StdEncoding.EncodeToString(png))
	}))
	defer srv.Close()

	out, err := executeRun(t,
		"--prompt", "a red circle",
		"--gemini-api-key", "cli-key",
		"--gemini-api-endpoint", srv.URL,
		"--format", "json",
	)

	require.NoError(t, err)
	require.Len(t, gjson.Get(out, "content").Array(), 1)
	assert.Contains(t, gjson.Get(out, "content.0.text").String(), "data:image/png;base64,iVBORw0KGgo")
	assert.Equal(t, "cli-key", <-keys)
}
