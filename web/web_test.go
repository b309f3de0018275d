package web

import (
	stdhtml "html"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Projekt-ERROR/calc/pkg/history"
)

func setupTestApp(t *testing.T) (*fiber.App, history.Store) {
	t.Helper()
	s := history.NewMemoryStore(10)
	h := New(s)
	app := fiber.New()
	h.Register(app)
	return app, s
}

func getPage(t *testing.T, app *fiber.App, method, path, form string) (int, string) {
	t.Helper()

	var req = httptest.NewRequest(method, path, strings.NewReader(form))
	if form != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	// The templates escape expressions ("+" becomes "&#43;"); unescape so
	// assertions can match them literally.
	return resp.StatusCode, stdhtml.UnescapeString(string(body))
}

func TestCalculatorPageEmpty(t *testing.T) {
	app, _ := setupTestApp(t)

	status, html := getPage(t, app, "GET", "/ui", "")
	if status != 200 {
		t.Fatalf("status = %d, want 200: %s", status, html)
	}
	if !strings.Contains(html, "calc") {
		t.Error("expected brand in response")
	}
	if !strings.Contains(html, "No calculations yet") {
		t.Error("expected empty state message")
	}
}

func TestCalculatorEvaluates(t *testing.T) {
	app, _ := setupTestApp(t)

	form := url.Values{"expression": {"2+3*4"}}.Encode()
	status, html := getPage(t, app, "POST", "/ui", form)
	if status != 200 {
		t.Fatalf("status = %d, want 200: %s", status, html)
	}
	if !strings.Contains(html, "= 14") {
		t.Error("expected result 14 in response")
	}
	if !strings.Contains(html, "2+3*4") {
		t.Error("expected expression echoed in history")
	}
}

func TestCalculatorShowsErrorKind(t *testing.T) {
	app, _ := setupTestApp(t)

	form := url.Values{"expression": {"4/0"}}.Encode()
	status, html := getPage(t, app, "POST", "/ui", form)
	if status != 200 {
		t.Fatalf("status = %d, want 200: %s", status, html)
	}
	if !strings.Contains(html, "DivisionByZero") {
		t.Error("expected error kind in response")
	}
	if strings.Contains(html, "= 0") {
		t.Error("failed calculation must not show a result")
	}
}

func TestCalculatorHistoryNewestFirst(t *testing.T) {
	app, s := setupTestApp(t)
	if _, err := s.Push("1+1", 2); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if _, err := s.Push("2*3", 6); err != nil {
		t.Fatalf("Push: %v", err)
	}

	_, html := getPage(t, app, "GET", "/ui", "")
	first := strings.Index(html, "2*3")
	second := strings.Index(html, "1+1")
	if first == -1 || second == -1 {
		t.Fatalf("entries missing from page")
	}
	if first > second {
		t.Error("expected newest entry rendered first")
	}
}

func TestCalculatorEscapesExpressions(t *testing.T) {
	app, s := setupTestApp(t)
	if _, err := s.Push("1+1", 2); err != nil {
		t.Fatalf("Push: %v", err)
	}

	req := httptest.NewRequest("GET", "/ui", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	raw := string(body)

	if !strings.Contains(raw, "1&#43;1") {
		t.Error("expected the expression HTML-escaped in the raw page")
	}
	if strings.Contains(raw, ">1+1<") {
		t.Error("expression must not reach the page unescaped")
	}
}

func TestClearHistory(t *testing.T) {
	app, s := setupTestApp(t)
	if _, err := s.Push("1+1", 2); err != nil {
		t.Fatalf("Push: %v", err)
	}

	status, _ := getPage(t, app, "POST", "/ui/clear", "")
	if status != 302 {
		t.Fatalf("status = %d, want redirect", status)
	}
	n, _ := s.Count()
	if n != 0 {
		t.Errorf("history not cleared: %d entries remain", n)
	}
}

func TestRootRedirectsToUI(t *testing.T) {
	app, _ := setupTestApp(t)

	status, _ := getPage(t, app, "GET", "/", "")
	if status != 302 {
		t.Errorf("status = %d, want redirect", status)
	}
}
