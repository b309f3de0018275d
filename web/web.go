// Package web provides the embedded web UI for the calc service: a single
// calculator page backed by the evaluation pipeline and the history store.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Projekt-ERROR/calc/pkg/calc"
	"github.com/Projekt-ERROR/calc/pkg/history"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the web UI pages.
type Handler struct {
	history history.Store
	funcMap template.FuncMap
}

// New creates a new web UI handler over the given history store.
func New(hist history.Store) *Handler {
	return &Handler{
		history: hist,
		funcMap: template.FuncMap{
			"formatTime":   formatTime,
			"timeAgo":      timeAgo,
			"formatResult": calc.FormatResult,
		},
	}
}

// Register adds web UI routes to the Fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/ui", h.calculator)
	app.Post("/ui", h.calculator)
	app.Post("/ui/clear", h.clear)

	// Redirect root to UI
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/ui")
	})
}

func (h *Handler) render(c *fiber.Ctx, page string, data interface{}) error {
	tmpl := template.Must(
		template.New("").Funcs(h.funcMap).ParseFS(templateFS, "templates/layout.html", "templates/"+page),
	)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		return c.Status(500).SendString(fmt.Sprintf("template error: %v", err))
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.Send(buf.Bytes())
}

// --- Page Data Types ---

type calculatorContent struct {
	Expression string
	HasResult  bool
	Result     string
	ErrKind    string
	ErrMessage string
	Entries    []*history.Entry
	Count      int
}

// --- Page Handlers ---

func (h *Handler) calculator(c *fiber.Ctx) error {
	content := calculatorContent{}

	if c.Method() == fiber.MethodPost {
		content.Expression = c.FormValue("expression")
		value, err := calc.Calculate(content.Expression)
		if err != nil {
			content.ErrKind = calc.KindOf(err).String()
			content.ErrMessage = err.Error()
		} else {
			content.HasResult = true
			content.Result = calc.FormatResult(value)
			if _, err := h.history.Push(content.Expression, value); err != nil {
				// The page still renders; the entry is simply not retained.
				content.ErrMessage = fmt.Sprintf("history unavailable: %v", err)
			}
		}
	}

	entries, err := h.history.All()
	if err == nil {
		// Newest first for display.
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
		content.Entries = entries
		content.Count = len(entries)
	}

	return h.render(c, "calculator.html", content)
}

func (h *Handler) clear(c *fiber.Ctx) error {
	if err := h.history.Clear(); err != nil {
		return c.Status(500).SendString(fmt.Sprintf("could not clear history: %v", err))
	}
	return c.Redirect("/ui")
}

// --- Template Helpers ---

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("2006-01-02 15:04:05")
}

func timeAgo(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		m := int(d.Minutes())
		if m == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", m)
	case d < 24*time.Hour:
		h := int(d.Hours())
		if h == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", h)
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}
