package blogconf

// SiteConfig is the configuration record handed to the site generator.
// It is built once, from a preset or a file, and only read afterwards.
type SiteConfig struct {
	Author      string `yaml:"author" json:"author"`
	SiteName    string `yaml:"site_name" json:"site_name"`
	SiteURL     string `yaml:"site_url" json:"site_url"`
	ThemePath   string `yaml:"theme_path" json:"theme_path"`
	FooterText  string `yaml:"footer_text" json:"footer_text"`
	ContentPath string `yaml:"content_path" json:"content_path"`

	StaticPaths       []string                `yaml:"static_paths,omitempty" json:"static_paths,omitempty"`
	ExtraPathMetadata map[string]PathOverride `yaml:"extra_path_metadata,omitempty" json:"extra_path_metadata,omitempty"`

	Timezone        string `yaml:"timezone" json:"timezone"`
	DefaultLanguage string `yaml:"default_language" json:"default_language"`

	FeedPaths `yaml:",inline"`

	Links       []Link `yaml:"links" json:"links"`
	SocialLinks []Link `yaml:"social_links" json:"social_links"`

	PaginationSize int `yaml:"pagination_size" json:"pagination_size"`
}

// PathOverride rewrites the output location of a static file.
type PathOverride struct {
	Path string `yaml:"path" json:"path"`
}

// FeedPaths holds the optional feed outputs. A nil path disables the feed.
type FeedPaths struct {
	FeedAllAtom         *string `yaml:"feed_all_atom_path" json:"feed_all_atom_path"`
	CategoryFeedAtom    *string `yaml:"category_feed_atom_path" json:"category_feed_atom_path"`
	TranslationFeedAtom *string `yaml:"translation_feed_atom_path" json:"translation_feed_atom_path"`
	AuthorFeedAtom      *string `yaml:"author_feed_atom_path" json:"author_feed_atom_path"`
	AuthorFeedRSS       *string `yaml:"author_feed_rss_path" json:"author_feed_rss_path"`
}

// Feed is an enabled feed and the path it is written to.
type Feed struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Link is a (label, url) pair of the blogroll or the social widget.
type Link struct {
	Label string
	URL   string
}

// Feeds returns the enabled feeds in canonical key order.
func (f FeedPaths) Feeds() []Feed {
	all := []struct {
		name string
		path *string
	}{
		{"feed_all_atom_path", f.FeedAllAtom},
		{"category_feed_atom_path", f.CategoryFeedAtom},
		{"translation_feed_atom_path", f.TranslationFeedAtom},
		{"author_feed_atom_path", f.AuthorFeedAtom},
		{"author_feed_rss_path", f.AuthorFeedRSS},
	}
	var out []Feed
	for _, e := range all {
		if e.path != nil {
			out = append(out, Feed{Name: e.name, Path: *e.path})
		}
	}
	return out
}

// Clone returns a deep copy of the record.
func (c SiteConfig) Clone() SiteConfig {
	out := c
	if c.StaticPaths != nil {
		out.StaticPaths = append([]string(nil), c.StaticPaths...)
	}
	if c.ExtraPathMetadata != nil {
		out.ExtraPathMetadata = make(map[string]PathOverride, len(c.ExtraPathMetadata))
		for k, v := range c.ExtraPathMetadata {
			out.ExtraPathMetadata[k] = v
		}
	}
	if c.Links != nil {
		out.Links = append([]Link(nil), c.Links...)
	}
	if c.SocialLinks != nil {
		out.SocialLinks = append([]Link(nil), c.SocialLinks...)
	}
	out.FeedPaths = FeedPaths{
		FeedAllAtom:         clonePath(c.FeedAllAtom),
		CategoryFeedAtom:    clonePath(c.CategoryFeedAtom),
		TranslationFeedAtom: clonePath(c.TranslationFeedAtom),
		AuthorFeedAtom:      clonePath(c.AuthorFeedAtom),
		AuthorFeedRSS:       clonePath(c.AuthorFeedRSS),
	}
	return out
}

func clonePath(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// FeedPath returns a pointer to path, for filling FeedPaths literals.
func FeedPath(path string) *string {
	return &path
}
