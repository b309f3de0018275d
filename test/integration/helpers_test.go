package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// testServer holds the base URL of a running calc server instance for tests.
var testServer string

func init() {
	testServer = os.Getenv("CALC_URL")
	if testServer == "" {
		testServer = "http://localhost:8787"
	}
	// Ensure the URL has a scheme.
	if !strings.HasPrefix(testServer, "http://") && !strings.HasPrefix(testServer, "https://") {
		testServer = "http://" + testServer
	}
}

// requireServer skips the test when no server is reachable at testServer.
// Start one with `calc serve` or point CALC_URL at a running instance.
func requireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(apiURL("healthz"))
	if err != nil {
		t.Skipf("no calc server at %s: %v", testServer, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Skipf("calc server at %s returned %d on /healthz", testServer, resp.StatusCode)
	}
}

// apiURL builds a full URL for the given server path.
func apiURL(path string) string {
	return strings.TrimRight(testServer, "/") + "/" + strings.TrimLeft(path, "/")
}

// postJSON sends a JSON POST and decodes the response body into a generic map.
func postJSON(t *testing.T, path string, body map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	resp, err := http.Post(apiURL(path), "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, decodeJSON(t, resp.Body)
}

// getJSON sends a GET and decodes the response body into a generic map.
func getJSON(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(apiURL(path))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, decodeJSON(t, resp.Body)
}

// doDelete sends a DELETE request and returns the status code.
func doDelete(t *testing.T, path string) int {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, apiURL(path), nil)
	if err != nil {
		t.Fatalf("build DELETE %s: %v", path, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s: %v", path, err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func decodeJSON(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return out
}

// errorKind extracts error.kind from an error response body.
func errorKind(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no error object: %v", body)
	}
	kind, _ := errObj["kind"].(string)
	return kind
}
