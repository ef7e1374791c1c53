package testutil

// WithDemoSiteData adds a small site: three published pages, a draft, and
// the landing and news assignments pointing at the first two.
func (b *Builder) WithDemoSiteData() *Builder {
	return b.
		WithPost("landing",
			Title("Welcome"), Content("# Welcome\n\nThis is the landing page.")).
		WithPost("news",
			Title("News"), Content("# News\n\nLatest updates live here.")).
		WithPost("about",
			Title("About us"), Content("# About\n\nWho we are.")).
		WithPost("draft",
			Title("Unfinished draft"), Draft(), Content("Work in progress.")).
		WithAssignment("page_for_landing", "landing").
		WithAssignment("page_for_news", "news")
}
