package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/projetonickjumper-byte/fitapp/internal/cli"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// PageData is the template data for rendering a reference page.
type PageData struct {
	Title   string
	Sidebar template.HTML
	Content template.HTML
}

func main() {
	outDir := flag.String("out", "docs/commands", "output directory")
	flag.Parse()

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		fatal("parsing template: %v", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	pages := buildPages(cli.Root())
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal("creating %s: %v", *outDir, err)
	}

	for _, page := range pages {
		var contentBuf bytes.Buffer
		if err := md.Convert([]byte(page.Markdown), &contentBuf); err != nil {
			fatal("converting %s: %v", page.Slug, err)
		}

		data := PageData{
			Title:   page.Title,
			Sidebar: template.HTML(renderSidebar(pages, page.Slug)),
			Content: template.HTML(contentBuf.String()),
		}

		var pageBuf bytes.Buffer
		if err := tmpl.Execute(&pageBuf, data); err != nil {
			fatal("executing template for %s: %v", page.Slug, err)
		}

		outFile := filepath.Join(*outDir, page.Slug+".html")
		if err := os.WriteFile(outFile, pageBuf.Bytes(), 0o644); err != nil {
			fatal("writing %s: %v", outFile, err)
		}

		fmt.Printf("  generated %s\n", outFile)
	}

	fmt.Printf("\n  %d pages generated\n", len(pages))
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} · fitapp</title>
<style>
body { display: flex; font-family: system-ui, sans-serif; margin: 0; color: #222; }
.sidebar-nav { width: 200px; padding: 1.5rem 1rem; background: #f6f6f6; min-height: 100vh; }
.nav-link { display: block; padding: .25rem 0; color: #444; text-decoration: none; }
.nav-link.active { color: #ff6b00; font-weight: bold; }
main { padding: 1.5rem 2rem; max-width: 760px; }
pre { padding: .75rem; overflow-x: auto; }
</style>
</head>
<body>
{{.Sidebar}}
<main>
{{.Content}}
</main>
</body>
</html>
`

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "docgen: "+format+"\n", args...)
	os.Exit(1)
}
