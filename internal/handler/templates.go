package handler

import (
	"embed"
	"html/template"
	"strconv"

	"shadowpulse/internal/report"
)

const dashboardTemplate = "dashboard.html"

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"score": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"upper": report.Upper,
}

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
}
