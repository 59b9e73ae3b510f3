package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"sync"

	"github.com/i474232898/weather-widget/internal/view"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageRenderer implements view.Renderer by keeping the rendered result
// region of the page, the way a browser widget updates its DOM.
type PageRenderer struct {
	mu      sync.RWMutex
	result  template.HTML
	loading bool
}

// NewPageRenderer returns a renderer with an empty result region.
func NewPageRenderer() *PageRenderer {
	return &PageRenderer{}
}

func (p *PageRenderer) RenderLoading(query string) {
	p.set(p.execute("loading", query), true)
}

func (p *PageRenderer) RenderSuccess(w view.WeatherView) {
	p.set(p.execute("success", w), false)
}

func (p *PageRenderer) RenderError(message string) {
	p.set(p.execute("error", message), false)
}

func (p *PageRenderer) execute(name string, data interface{}) template.HTML {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("ERROR: rendering %s fragment: %v", name, err)
		return ""
	}
	return template.HTML(buf.String())
}

func (p *PageRenderer) set(result template.HTML, loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.result = result
	p.loading = loading
}

// pageData is the input of the "page" template.
type pageData struct {
	Cities  []string
	Result  template.HTML
	Loading bool
}

// Page renders the full HTML document around the current result region.
func (p *PageRenderer) Page(cities []string) ([]byte, error) {
	p.mu.RLock()
	data := pageData{Cities: cities, Result: p.result, Loading: p.loading}
	p.mu.RUnlock()

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "page", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
