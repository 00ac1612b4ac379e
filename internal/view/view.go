// Package view holds the embedded HTML templates of the pages.
package view

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

// Layout wraps every page.
const Layout = "layouts/main"

//go:embed templates
var files embed.FS

// New returns a template engine over the embedded templates.
func New() *html.Engine {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("datetime", func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	})
	return engine
}
