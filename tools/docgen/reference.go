package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Page is one reference page, generated per top-level command.
type Page struct {
	Slug     string
	Title    string
	Markdown string
}

// buildPages walks the command tree and returns an overview page followed by
// one page per visible top-level command.
func buildPages(root *cobra.Command) []Page {
	pages := []Page{overviewPage(root)}
	for _, cmd := range root.Commands() {
		if !cmd.IsAvailableCommand() || cmd.Name() == "help" {
			continue
		}
		var b strings.Builder
		writeCommand(&b, cmd, 1)
		pages = append(pages, Page{
			Slug:     cmd.Name(),
			Title:    cmd.CommandPath(),
			Markdown: b.String(),
		})
	}
	return pages
}

func overviewPage(root *cobra.Command) Page {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", root.Name(), root.Short)
	b.WriteString("| Command | Description |\n|---|---|\n")
	for _, cmd := range root.Commands() {
		if !cmd.IsAvailableCommand() || cmd.Name() == "help" {
			continue
		}
		fmt.Fprintf(&b, "| [%s](%s.html) | %s |\n", cmd.Name(), cmd.Name(), cmd.Short)
	}

	if flags := root.PersistentFlags().FlagUsages(); flags != "" {
		b.WriteString("\n## Global flags\n\n```text\n")
		b.WriteString(flags)
		b.WriteString("```\n")
	}
	return Page{Slug: "index", Title: root.Name(), Markdown: b.String()}
}

// writeCommand renders cmd and its subcommands, nesting headings by depth.
func writeCommand(b *strings.Builder, cmd *cobra.Command, depth int) {
	fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", min(depth, 6)), cmd.CommandPath())
	if cmd.Short != "" {
		fmt.Fprintf(b, "%s\n\n", cmd.Short)
	}

	if cmd.Runnable() {
		fmt.Fprintf(b, "```sh\n%s\n```\n\n", cmd.UseLine())
	}
	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(b, "Aliases: `%s`\n\n", strings.Join(cmd.Aliases, "`, `"))
	}
	if flags := cmd.LocalNonPersistentFlags().FlagUsages(); flags != "" {
		fmt.Fprintf(b, "```text\n%s```\n\n", flags)
	}

	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		writeCommand(b, sub, depth+1)
	}
}

// renderSidebar generates the sidebar nav HTML.
func renderSidebar(pages []Page, current string) string {
	var b strings.Builder
	b.WriteString(`<nav class="sidebar-nav">` + "\n")
	for _, p := range pages {
		activeClass := ""
		if p.Slug == current {
			activeClass = " active"
		}
		b.WriteString(fmt.Sprintf(`  <a href="%s.html" class="nav-link%s">%s</a>`+"\n", p.Slug, activeClass, p.Title))
	}
	b.WriteString("</nav>\n")
	return b.String()
}
