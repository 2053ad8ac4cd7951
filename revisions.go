package blogconf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Revision identifies one of the published versions of the site configuration.
type Revision int

const (
	Revision1 Revision = iota + 1
	Revision2
	Revision3

	// Latest is the revision used when none is given.
	Latest = Revision3
)

// ErrUnknownRevision is returned for a revision that has no preset.
var ErrUnknownRevision = errors.New("blogconf: unknown revision")

const (
	siteAuthor    = "Mike Wild"
	productionURL = "http://mikeanthonywild.com"
	localURL      = "http://localhost:8000"
	localTheme    = "C:/Users/mwild/Development/blog-theme"
	copyrightYear = 2015
)

func (r Revision) String() string {
	return "r" + strconv.Itoa(int(r))
}

// Revisions lists every revision that has a preset, oldest first.
func Revisions() []Revision {
	return []Revision{Revision1, Revision2, Revision3}
}

// ParseRevision accepts "1", "r1" or "latest".
func ParseRevision(s string) (Revision, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "latest" {
		return Latest, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "r"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRevision, s)
	}
	r := Revision(n)
	if r < Revision1 || r > Revision3 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRevision, s)
	}
	return r, nil
}

// Preset returns a fresh copy of the configuration published as revision r.
func Preset(r Revision) (SiteConfig, error) {
	switch r {
	case Revision1:
		cfg := baseConfig()
		cfg.SiteURL = productionURL
		cfg.ThemePath = localTheme
		cfg.FooterText = FooterText(copyrightYear, siteAuthor)
		return cfg, nil
	case Revision2:
		cfg := baseConfig()
		cfg.SiteURL = localURL
		cfg.ThemePath = localTheme
		cfg.FooterText = FooterMarkup(copyrightYear, siteAuthor, "/pages/about.html")
		return cfg, nil
	case Revision3:
		cfg := baseConfig()
		cfg.SiteURL = productionURL
		cfg.ThemePath = "theme"
		cfg.FooterText = FooterMarkup(copyrightYear, siteAuthor, "/pages/about.html")
		cfg.StaticPaths = []string{"images", "extra/CNAME"}
		cfg.ExtraPathMetadata = map[string]PathOverride{
			"extra/CNAME": {Path: "CNAME"},
		}
		cfg.FeedAllAtom = FeedPath("feeds/all.atom.xml")
		return cfg, nil
	}
	return SiteConfig{}, fmt.Errorf("%w: %d", ErrUnknownRevision, int(r))
}

// MustPreset is like Preset but panics on an unknown revision.
func MustPreset(r Revision) SiteConfig {
	cfg, err := Preset(r)
	if err != nil {
		panic(err)
	}
	return cfg
}

// baseConfig holds the settings shared by every revision. Feeds stay
// disabled unless a revision turns them on.
func baseConfig() SiteConfig {
	return SiteConfig{
		Author:          siteAuthor,
		SiteName:        siteAuthor,
		ContentPath:     "content",
		Timezone:        "Europe/London",
		DefaultLanguage: "en",
		Links: []Link{
			{Label: "Pelican", URL: "http://getpelican.com/"},
			{Label: "Python.org", URL: "http://python.org/"},
			{Label: "Jinja2", URL: "http://jinja.pocoo.org/"},
			{Label: "You can modify those links in your config file", URL: "#"},
		},
		SocialLinks: []Link{
			{Label: "You can add links in your config file", URL: "#"},
			{Label: "Another social link", URL: "#"},
		},
		PaginationSize: 5,
	}
}
