// Package views embeds the storefront page templates.
package views

import (
	"embed"
	"html/template"
	"strconv"
	"time"
)

//go:embed *.tmpl
var files embed.FS

const StorefrontPage = "storefront.tmpl"

var funcs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
	"price": func(p float64) string {
		return "$" + strconv.FormatFloat(p, 'f', -1, 64)
	},
}

// Templates parses every embedded template. It panics on a malformed
// template, which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "*.tmpl"))
}
