package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/cryptfolio"
)

//go:embed templates/*.md
var templates embed.FS

// RateLimitMarkdown renders the remaining API calls as markdown.
func RateLimitMarkdown(rl cryptfolio.RateLimit) string {
	return renderTemplate("rateLimit", "templates/rate_limit.md", nil, rl)
}

// CurrenciesMarkdown renders the supported currency table as markdown.
func CurrenciesMarkdown(list []cryptfolio.Currency) string {
	partials := map[string]string{
		"currencies_row": "templates/currencies_row.md",
	}
	return renderTemplate("currencies", "templates/currencies.md", partials, list)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
