package publish

import (
	"fmt"
	"testing"
	"time"

	"sitebuilder-app/internal/domain/pages"
	"sitebuilder-app/internal/domain/sites"

	"github.com/stretchr/testify/require"
)

func testSite() *sites.Site {
	return &sites.Site{
		ID:       "11111111-1111-1111-1111-111111111111",
		Name:     "my-site",
		Title:    "My Site",
		OwnerID:  1,
		Status:   sites.StatusUnpublished,
		Settings: sites.DefaultSettings(),
	}
}

func TestHomePage_PrefersHomeSlug(t *testing.T) {
	pgs := []pages.Page{
		{Slug: "about", Title: "About"},
		{Slug: "home", Title: "Home"},
	}

	home := HomePage(pgs)
	require.NotNil(t, home)
	require.Equal(t, "home", home.Slug)
}

func TestHomePage_FallsBackToFirst(t *testing.T) {
	pgs := []pages.Page{
		{Slug: "about", Title: "About"},
		{Slug: "contact", Title: "Contact"},
	}

	home := HomePage(pgs)
	require.NotNil(t, home)
	require.Equal(t, "about", home.Slug)
}

func TestHomePage_NilWhenEmpty(t *testing.T) {
	require.Nil(t, HomePage(nil))
}

func TestBuildSiteHTML_WelcomePlaceholderWithoutPages(t *testing.T) {
	out := BuildSiteHTML(testSite(), nil)

	require.Contains(t, out, "<p>Welcome to My Site</p>")
	require.Contains(t, out, "<title>My Site</title>")
}

func TestBuildSiteHTML_NavLinks(t *testing.T) {
	pgs := []pages.Page{
		{Slug: "home", Title: "Home"},
		{Slug: "about", Title: "About"},
	}

	out := BuildSiteHTML(testSite(), pgs)

	require.Contains(t, out, `href="index.html">Home</a>`)
	require.Contains(t, out, `href="about.html">About</a>`)
}

func TestBuildSiteHTML_SettingsInjectedAsCSS(t *testing.T) {
	s := testSite()
	s.Settings.Colors.Primary = "#112233"
	s.Settings.Fonts.Heading = "Georgia"

	out := BuildSiteHTML(s, nil)

	require.Contains(t, out, "--primary-color: #112233;")
	require.Contains(t, out, "--secondary-color: #6c757d;")
	require.Contains(t, out, "Georgia")
}

func TestBuildSiteHTML_HeroRule(t *testing.T) {
	out := BuildSiteHTML(testSite(), nil)

	require.Contains(t, out, ".hero {")
	require.Contains(t, out, "linear-gradient(135deg, var(--primary-color), var(--secondary-color))")
}

func TestBuildSiteHTML_CSSValuesCannotEscapeStyleBlock(t *testing.T) {
	s := testSite()
	s.Settings.Fonts.Body = "</style><script>alert(1)</script>"

	out := BuildSiteHTML(s, nil)
	require.NotContains(t, out, "<script>alert(1)</script>")
}

func TestBuildSiteHTML_FooterYear(t *testing.T) {
	out := BuildSiteHTML(testSite(), nil)
	require.Contains(t, out, fmt.Sprintf("&copy; %d My Site", time.Now().Year()))
}

func TestBuildSiteHTML_Idempotent(t *testing.T) {
	s := testSite()
	pgs := []pages.Page{
		{Slug: "home", Title: "Home", Content: pages.Blocks{
			{Type: pages.BlockHeading, Level: 1, Content: "A"},
			{Type: pages.BlockText, Content: "B"},
		}},
	}

	require.Equal(t, BuildSiteHTML(s, pgs), BuildSiteHTML(s, pgs))
}

func TestBuildSiteHTML_RendersHomeContent(t *testing.T) {
	pgs := []pages.Page{
		{Slug: "home", Title: "Home", Content: pages.Blocks{
			{Type: pages.BlockHeading, Level: 1, Content: "A"},
			{Type: pages.BlockText, Content: "B"},
		}},
	}

	out := BuildSiteHTML(testSite(), pgs)
	require.Contains(t, out, "<h1>A</h1><p>B</p>")
}

func TestBuildSiteHTML_EscapesTitle(t *testing.T) {
	s := testSite()
	s.Title = `<img src=x onerror=alert(1)>`

	out := BuildSiteHTML(s, nil)
	require.NotContains(t, out, "<img src=x")
}

func TestBuildStarterHTML(t *testing.T) {
	out := BuildStarterHTML(testSite())

	require.Contains(t, out, "Welcome to My Site")
	require.Contains(t, out, "Your site is ready to be customized. Start building!")
}
