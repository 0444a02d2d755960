package publish

import (
	"testing"

	"sitebuilder-app/internal/domain/pages"

	"github.com/stretchr/testify/require"
)

func TestRenderBlocks_OrderPreserved(t *testing.T) {
	blocks := pages.Blocks{
		{Type: pages.BlockHeading, Level: 1, Content: "A"},
		{Type: pages.BlockText, Content: "B"},
	}

	require.Equal(t, "<h1>A</h1><p>B</p>", RenderBlocks(blocks))
}

func TestRenderBlocks_UnknownTypeContributesNothing(t *testing.T) {
	blocks := pages.Blocks{
		{Type: pages.BlockHeading, Level: 1, Content: "A"},
		{Type: "video", Src: "clip.mp4"},
		{Type: pages.BlockText, Content: "B"},
	}

	require.Equal(t, "<h1>A</h1><p>B</p>", RenderBlocks(blocks))
}

func TestRenderBlocks_Image(t *testing.T) {
	blocks := pages.Blocks{
		{Type: pages.BlockImage, Src: "/media/photo.jpg", Alt: "a photo"},
	}

	require.Equal(t, `<img src="/media/photo.jpg" alt="a photo" class="img-fluid my-3">`, RenderBlocks(blocks))
}

func TestRenderBlocks_HeadingLevelClamped(t *testing.T) {
	require.Equal(t, "<h1>x</h1>", RenderBlocks(pages.Blocks{{Type: pages.BlockHeading, Level: 0, Content: "x"}}))
	require.Equal(t, "<h6>x</h6>", RenderBlocks(pages.Blocks{{Type: pages.BlockHeading, Level: 9, Content: "x"}}))
}

func TestRenderBlocks_EscapesContent(t *testing.T) {
	blocks := pages.Blocks{
		{Type: pages.BlockText, Content: `<script>alert("x")</script>`},
	}

	out := RenderBlocks(blocks)
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "&lt;script&gt;")
}

func TestRenderBlocks_EscapesImageAttributes(t *testing.T) {
	blocks := pages.Blocks{
		{Type: pages.BlockImage, Src: `x" onerror="alert(1)`, Alt: "ok"},
	}

	out := RenderBlocks(blocks)
	require.NotContains(t, out, `" onerror="`)
}

func TestRenderBlocks_Empty(t *testing.T) {
	require.Equal(t, "", RenderBlocks(nil))
	require.Equal(t, "", RenderBlocks(pages.Blocks{}))
}

func TestRenderPageContent_PlaceholderWhenNoBlocks(t *testing.T) {
	page := &pages.Page{Title: "About Us"}

	out := RenderPageContent(page)
	require.Contains(t, out, "About Us")
	require.Contains(t, out, "This page is being built. Check back soon!")
}

func TestRenderPageContent_WrapsBlocks(t *testing.T) {
	page := &pages.Page{
		Title: "Home",
		Content: pages.Blocks{
			{Type: pages.BlockText, Content: "hello"},
		},
	}

	out := RenderPageContent(page)
	require.Contains(t, out, "<h1>Home</h1>")
	require.Contains(t, out, "<p>hello</p>")
	require.NotContains(t, out, "being built")
}

func TestRenderPageContent_Deterministic(t *testing.T) {
	page := &pages.Page{
		Title: "Home",
		Content: pages.Blocks{
			{Type: pages.BlockHeading, Level: 2, Content: "Hi"},
			{Type: pages.BlockText, Content: "There"},
		},
	}

	require.Equal(t, RenderPageContent(page), RenderPageContent(page))
}
