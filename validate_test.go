package blogconf

import (
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func TestPresetsValidate(t *testing.T) {
	for _, rev := range Revisions() {
		cfg := MustPreset(rev)
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", rev, err)
		}
	}
}

func TestValidateReportsFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SiteConfig)
		field  string
	}{
		{"missing author", func(c *SiteConfig) { c.Author = "" }, "author"},
		{"bad scheme", func(c *SiteConfig) { c.SiteURL = "ftp://example.com" }, "site_url"},
		{"no host", func(c *SiteConfig) { c.SiteURL = "http://" }, "site_url"},
		{"footer without author", func(c *SiteConfig) { c.FooterText = "copyright 2015" }, "footer_text"},
		{"unclosed footer markup", func(c *SiteConfig) { c.FooterText = "<a href=\"/\">Mike Wild" }, "footer_text"},
		{"bad timezone", func(c *SiteConfig) { c.Timezone = "Mars/Olympus" }, "timezone"},
		{"bad language", func(c *SiteConfig) { c.DefaultLanguage = "not a locale!" }, "default_language"},
		{"empty feed", func(c *SiteConfig) { c.AuthorFeedRSS = FeedPath("") }, "author_feed_rss_path"},
		{"absolute feed", func(c *SiteConfig) { c.FeedAllAtom = FeedPath("/feeds/all.atom.xml") }, "feed_all_atom_path"},
		{"no links", func(c *SiteConfig) { c.Links = nil }, "links"},
		{"link without url", func(c *SiteConfig) { c.SocialLinks[0].URL = "" }, "social_links"},
		{"zero pagination", func(c *SiteConfig) { c.PaginationSize = 0 }, "pagination_size"},
		{"negative pagination", func(c *SiteConfig) { c.PaginationSize = -1 }, "pagination_size"},
		{"empty static path", func(c *SiteConfig) { c.StaticPaths = append(c.StaticPaths, "") }, "static_paths"},
		{"empty override", func(c *SiteConfig) { c.ExtraPathMetadata["extra/robots.txt"] = PathOverride{} }, "extra_path_metadata"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MustPreset(Latest)
			tt.mutate(&cfg)

			err := cfg.Validate()
			var verrs validation.Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() = %v, want validation.Errors", err)
			}
			if _, ok := verrs[tt.field]; !ok {
				t.Errorf("expected error on %q, got %v", tt.field, verrs)
			}
		})
	}
}

func TestValidateFooterWithEscapedAuthor(t *testing.T) {
	for _, author := range []string{"Tom & Jerry", `Mike "Wild" <M>`} {
		cfg := MustPreset(Latest)
		cfg.Author = author
		cfg.SiteName = author
		cfg.FooterText = FooterMarkup(2015, author, "/pages/about.html")
		if err := cfg.Validate(); err != nil {
			t.Errorf("author %q: Validate() = %v", author, err)
		}
		text, _ := footerInfo(cfg.FooterText)
		if !strings.Contains(text, author) {
			t.Errorf("author %q missing from footer text %q", author, text)
		}
	}
}

func TestValidateFooterWithVoidElement(t *testing.T) {
	cfg := MustPreset(Latest)
	cfg.FooterText = `copyright<br><a href="/">Mike Wild</a>`
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidateFeedErrorsUseFeedKeys(t *testing.T) {
	cfg := MustPreset(Latest)
	cfg.CategoryFeedAtom = FeedPath(" ")
	cfg.TranslationFeedAtom = FeedPath("C:/feeds/%s.atom.xml")

	var verrs validation.Errors
	if !errors.As(cfg.Validate(), &verrs) {
		t.Fatalf("expected validation.Errors")
	}
	for _, key := range []string{"category_feed_atom_path", "translation_feed_atom_path"} {
		if _, ok := verrs[key]; !ok {
			t.Errorf("missing error for %s in %v", key, verrs)
		}
	}
	for _, key := range []string{"feed_all_atom_path", "FeedPaths"} {
		if _, ok := verrs[key]; ok {
			t.Errorf("unexpected error for %s: %v", key, verrs[key])
		}
	}
}

func TestWarnings(t *testing.T) {
	if w := MustPreset(Revision3).Warnings(); len(w) != 0 {
		t.Errorf("latest revision warnings = %v, want none", w)
	}

	w := MustPreset(Revision1).Warnings()
	if len(w) != 1 || !strings.Contains(w[0], "theme_path") {
		t.Errorf("r1 warnings = %v, want theme_path only", w)
	}

	w = MustPreset(Revision2).Warnings()
	if len(w) != 2 {
		t.Errorf("r2 warnings = %v, want theme_path and site_url", w)
	}

	cfg := MustPreset(Revision3)
	cfg.ThemePath = "/home/mwild/blog-theme"
	if len(cfg.Warnings()) != 1 {
		t.Errorf("unix absolute theme path should warn")
	}
}
