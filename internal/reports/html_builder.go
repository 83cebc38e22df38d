package reports

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"spacecast/internal/charts"
	"spacecast/internal/config"
)

// HTMLBuilder converts the markdown report into a standalone HTML page
// with embedded chart snippets.
type HTMLBuilder struct{}

// NewHTMLBuilder creates an HTML builder
func NewHTMLBuilder() *HTMLBuilder {
	return &HTMLBuilder{}
}

// chartPlaceholders maps snippet IDs onto the template fields used in
// the markdown body.
type chartPlaceholders struct {
	KpTrendChart     template.HTML
	BlackoutChart    template.HTML
	SolarChart       template.HTML
	KpBreakdownTable template.HTML
}

// MarkdownToHTML converts markdown to HTML
func (h *HTMLBuilder) MarkdownToHTML(markdownText string) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(markdownText))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return string(markdown.Render(doc, renderer))
}

// BuildPage converts the markdown body to HTML, substitutes chart
// snippets into their placeholders, and wraps everything into a complete
// document.
func (h *HTMLBuilder) BuildPage(markdownBody string, snippets []charts.ChartSnippet) (string, error) {
	bodyHTML := h.MarkdownToHTML(markdownBody)

	placeholders := chartPlaceholders{}
	for _, snippet := range snippets {
		switch snippet.ID {
		case "chart-kp-trend":
			placeholders.KpTrendChart = template.HTML(snippet.HTML)
		case "chart-radio-blackout":
			placeholders.BlackoutChart = template.HTML(snippet.HTML)
		case "chart-solar-radiation":
			placeholders.SolarChart = template.HTML(snippet.HTML)
		case "table-kp-breakdown":
			placeholders.KpBreakdownTable = template.HTML(snippet.HTML)
		}
	}

	tmpl, err := template.New("body").Parse(bodyHTML)
	if err != nil {
		return "", fmt.Errorf("failed to parse report body template: %w", err)
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, placeholders); err != nil {
		return "", fmt.Errorf("failed to substitute chart placeholders: %w", err)
	}

	page := struct {
		Content template.HTML
		Version string
	}{
		Content: template.HTML(body.String()),
		Version: config.GetVersion(),
	}

	pageTmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse page template: %w", err)
	}
	var out bytes.Buffer
	if err := pageTmpl.Execute(&out, page); err != nil {
		return "", fmt.Errorf("failed to execute page template: %w", err)
	}
	return out.String(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>3-Day Geomagnetic Forecast</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; max-width: 960px; margin: 0 auto; padding: 1.5rem; color: #212529; }
h1, h2 { border-bottom: 1px solid #dee2e6; padding-bottom: .3rem; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #dee2e6; padding: .4rem .8rem; text-align: center; }
thead th { background: #f8f9fa; }
td.storm-level { background: #f8d7da; font-weight: bold; }
pre, code { background: #f8f9fa; }
pre { padding: 1rem; overflow-x: auto; }
footer { margin-top: 2rem; font-size: .8rem; color: #6c757d; }
</style>
</head>
<body>
{{.Content}}
<footer>spacecast v{{.Version}}</footer>
</body>
</html>
`
