// Package web renders the site's HTML pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/healthmateai/healthmate/internal/domain/entities"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Page names accepted by Render.
const (
	PageHome           = "home"
	PageAbout          = "about"
	PageContact        = "contact"
	PageSymptomChecker = "symptom_checker"
	PageTreatments     = "treatments"
	PageBooking        = "book_appointment"
	PageDashboard      = "dashboard"
	PageTestimonials   = "testimonials"
	PagePrivacy        = "privacy_policy"
	PageNotFound       = "not_found"
	PageError          = "error"
)

var pageNames = []string{
	PageHome, PageAbout, PageContact, PageSymptomChecker, PageTreatments,
	PageBooking, PageDashboard, PageTestimonials, PagePrivacy, PageNotFound, PageError,
}

// PageData is what every page template receives.
type PageData struct {
	Title        string
	Path         string
	Nav          []entities.NavItem
	Notification *entities.Notification
	Content      interface{}

	// set by the renderer
	ToastDurationMs int64
}

// Renderer executes page templates. Each page is parsed once together with
// the shared layout and partials.
type Renderer struct {
	pages         map[string]*template.Template
	toastDuration time.Duration
}

// NewRenderer parses every page template.
func NewRenderer(toastDuration time.Duration) (*Renderer, error) {
	r := &Renderer{
		pages:         make(map[string]*template.Template, len(pageNames)),
		toastDuration: toastDuration,
	}

	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcMap()).ParseFS(templateFiles,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page with the given status. Output is buffered so a
// template error never produces a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	data.ToastDurationMs = r.toastDuration.Milliseconds()

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded assets. Mount it under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

var icons = map[string]string{
	"stethoscope":    "🩺",
	"heart":          "❤️",
	"calendar":       "📅",
	"shield":         "🛡️",
	"users":          "👥",
	"award":          "🏆",
	"mail":           "✉️",
	"phone":          "📞",
	"map-pin":        "📍",
	"clock":          "🕒",
	"message-circle": "💬",
	"file-text":      "📄",
	"lock":           "🔒",
	"eye":            "👁️",
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"icon": func(name string) string {
			if glyph, ok := icons[name]; ok {
				return glyph
			}
			return "•"
		},
		"isActive": func(itemPath, current string) bool {
			return itemPath == current
		},
		"stars": func(n int) []int {
			if n < 0 {
				n = 0
			}
			return make([]int, n)
		},
		"lines": func(s string) []string {
			return strings.Split(s, "\n")
		},
		"capitalize": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"severityClass": func(severity string) string {
			switch severity {
			case "mild":
				return "badge-green"
			case "moderate":
				return "badge-yellow"
			case "severe":
				return "badge-red"
			default:
				return "badge-gray"
			}
		},
		"optionLabel": func(options []entities.Option, value string) string {
			for _, o := range options {
				if o.Value == value {
					return o.Label
				}
			}
			return value
		},
		"contains": func(list []string, s string) bool {
			for _, v := range list {
				if v == s {
					return true
				}
			}
			return false
		},
		// trustedHTML marks Markdown rendered from embedded content.
		"trustedHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}
}
