package publish

import (
	"fmt"
	"html"
	"strings"
	"time"

	"sitebuilder-app/internal/domain/pages"
	"sitebuilder-app/internal/domain/sites"
)

/*
	Site HTML assembler
	-------------------
	Wraps the rendered home page in a full document: nav over all pages,
	a style block carrying the site's colors/fonts as CSS custom
	properties, and a footer with the current year. Only index.html is
	ever written; the nav still links {slug}.html for other pages, which
	matches what the editor previews.
*/

// HomePage picks the page whose slug is "home", falling back to the first
// page of the list. Returns nil for a site with no pages.
func HomePage(pgs []pages.Page) *pages.Page {
	for i := range pgs {
		if pgs[i].Slug == "home" {
			return &pgs[i]
		}
	}
	if len(pgs) > 0 {
		return &pgs[0]
	}
	return nil
}

// BuildSiteHTML produces the complete index.html for a site.
func BuildSiteHTML(s *sites.Site, pgs []pages.Page) string {
	title := html.EscapeString(s.Title)
	description := html.EscapeString(s.Description)
	if description == "" {
		description = title
	}

	var content string
	if home := HomePage(pgs); home != nil {
		content = RenderPageContent(home)
	} else {
		content = "<p>Welcome to " + title + "</p>"
	}

	var nav strings.Builder
	for _, p := range pgs {
		href := p.Slug + ".html"
		if p.Slug == "home" {
			href = "index.html"
		}
		nav.WriteString(fmt.Sprintf(`<li class="nav-item"><a class="nav-link" href="%s">%s</a></li>`,
			html.EscapeString(href), html.EscapeString(p.Title)))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <meta name="description" content="%s">
  <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.0/font/bootstrap-icons.css">
  <style>
    :root {
      --primary-color: %s;
      --secondary-color: %s;
    }
    body {
      font-family: %s;
      color: #333;
    }
    h1, h2, h3, h4, h5, h6 {
      font-family: %s;
      color: var(--primary-color);
    }
    .navbar {
      background-color: var(--primary-color) !important;
    }
    .navbar-brand, .navbar-brand:hover {
      color: white !important;
      font-weight: bold;
    }
    .nav-link {
      color: white !important;
    }
    .nav-link:hover {
      opacity: 0.8;
    }
    main {
      min-height: calc(100vh - 200px);
    }
    footer {
      background-color: #f8f9fa;
      border-top: 1px solid #dee2e6;
      margin-top: 3rem;
    }
    .hero {
      background: linear-gradient(135deg, var(--primary-color), var(--secondary-color));
      color: white;
      padding: 4rem 0;
      text-align: center;
    }
  </style>
</head>
<body>
  <nav class="navbar navbar-expand-lg navbar-dark">
    <div class="container">
      <a class="navbar-brand" href="index.html">%s</a>
      <button class="navbar-toggler" type="button" data-bs-toggle="collapse" data-bs-target="#navbarNav">
        <span class="navbar-toggler-icon"></span>
      </button>
      <div class="collapse navbar-collapse" id="navbarNav">
        <ul class="navbar-nav ms-auto">
          %s
        </ul>
      </div>
    </div>
  </nav>

  <main>
    %s
  </main>

  <footer class="py-4">
    <div class="container">
      <p class="text-center text-muted mb-0">&copy; %d %s. All rights reserved.</p>
    </div>
  </footer>

  <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/js/bootstrap.bundle.min.js"></script>
</body>
</html>`,
		title, description,
		cssValue(s.Settings.Colors.Primary), cssValue(s.Settings.Colors.Secondary),
		cssValue(s.Settings.Fonts.Body), cssValue(s.Settings.Fonts.Heading),
		title, nav.String(), content, time.Now().Year(), title)
}

// BuildStarterHTML is the template written once at site creation under the
// unpublished root. Never updated afterwards.
func BuildStarterHTML(s *sites.Site) string {
	title := html.EscapeString(s.Title)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
  <style>
    body {
      font-family: %s;
    }
    h1, h2, h3, h4, h5, h6 {
      font-family: %s;
    }
  </style>
</head>
<body>
  <nav class="navbar navbar-expand-lg navbar-light bg-light">
    <div class="container">
      <a class="navbar-brand" href="#">%s</a>
    </div>
  </nav>
  <main class="container my-5">
    <h1>Welcome to %s</h1>
    <p>Your site is ready to be customized. Start building!</p>
  </main>
  <footer class="bg-light py-4 text-center">
    <p class="text-muted">&copy; %d %s. All rights reserved.</p>
  </footer>
</body>
</html>`,
		title, cssValue(s.Settings.Fonts.Body), cssValue(s.Settings.Fonts.Heading),
		title, title, time.Now().Year(), title)
}

// cssValue keeps user-supplied colors and font names from breaking out of
// the style block.
func cssValue(v string) string {
	v = strings.NewReplacer("<", "", ">", "", "{", "", "}", "", ";", "", "\\", "").Replace(v)
	return strings.TrimSpace(v)
}
