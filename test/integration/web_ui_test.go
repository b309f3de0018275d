package integration

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestWebUIPageLoads(t *testing.T) {
	requireServer(t)

	resp, err := http.Get(apiURL("ui"))
	if err != nil {
		t.Fatalf("GET /ui: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		t.Skip("web UI disabled on this server")
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(raw), `name="expression"`) {
		t.Error("page is missing the expression input")
	}
}

func TestWebUIEvaluatesForm(t *testing.T) {
	requireServer(t)

	resp, err := http.PostForm(apiURL("ui"), url.Values{"expression": {"(3+4)*2"}})
	if err != nil {
		t.Fatalf("POST /ui: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		t.Skip("web UI disabled on this server")
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(raw), "14") {
		t.Error("page does not show the result")
	}
}
