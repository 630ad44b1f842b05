package templates

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// Engine builds the views engine for the public invite pages from the
// embedded templates. Template names are the file names without extension
// (invite, not_found, quota_exceeded, error).
func Engine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("templates: embedded views missing: " + err.Error())
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
