package publish

import (
	"fmt"
	"html"
	"strings"

	"sitebuilder-app/internal/domain/pages"
)

/*
	Page renderer
	-------------
	Pure functions from page content to HTML fragments. Deterministic:
	the same block list always yields the same bytes. All user-entered
	text and attribute values are escaped before interpolation.
*/

// RenderBlocks concatenates one fragment per block, in array order.
// Unknown block types contribute nothing; surrounding blocks keep their
// positions.
func RenderBlocks(blocks pages.Blocks) string {
	var b strings.Builder
	for _, block := range blocks {
		switch block.Type {
		case pages.BlockText:
			b.WriteString("<p>" + html.EscapeString(block.Content) + "</p>")
		case pages.BlockHeading:
			level := block.Level
			if level < 1 {
				level = 1
			} else if level > 6 {
				level = 6
			}
			b.WriteString(fmt.Sprintf("<h%d>%s</h%d>", level, html.EscapeString(block.Content), level))
		case pages.BlockImage:
			b.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" class="img-fluid my-3">`,
				html.EscapeString(block.Src), html.EscapeString(block.Alt)))
		}
	}
	return b.String()
}

// RenderPageContent wraps the page's blocks in the content container. A
// page with no blocks yet gets a placeholder so published sites never
// show an empty main section.
func RenderPageContent(p *pages.Page) string {
	title := html.EscapeString(p.Title)

	if len(p.Content) == 0 {
		return fmt.Sprintf(`<div class="container my-5">
      <h1>%s</h1>
      <p>This page is being built. Check back soon!</p>
    </div>`, title)
	}

	return fmt.Sprintf(`<div class="container my-5">
    <h1>%s</h1>
    <div class="page-content">
      %s
    </div>
  </div>`, title, RenderBlocks(p.Content))
}
