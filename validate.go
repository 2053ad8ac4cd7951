package blogconf

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	_ "time/tzdata"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/language"
)

var driveLetterPath = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// Validate lints the record. Nothing in this package calls it implicitly:
// a record is usable by the generator whether or not it passes.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Author, validation.Required),
		validation.Field(&c.SiteName, validation.Required),
		validation.Field(&c.SiteURL, validation.Required, validation.By(validateSiteURL)),
		validation.Field(&c.ThemePath, validation.Required),
		validation.Field(&c.FooterText,
			validation.Required,
			validation.By(func(value interface{}) error {
				footer, _ := value.(string)
				text, balanced := footerInfo(footer)
				if c.Author != "" && !strings.Contains(footer, c.Author) && !strings.Contains(text, c.Author) {
					return validation.NewError("validation_footer_author", "must contain the author")
				}
				if !balanced {
					return validation.NewError("validation_footer_markup", "markup must be balanced and end on a closing tag")
				}
				return nil
			}),
		),
		validation.Field(&c.ContentPath, validation.Required),
		validation.Field(&c.StaticPaths, validation.Each(validation.Required)),
		validation.Field(&c.ExtraPathMetadata, validation.By(validatePathOverrides)),
		validation.Field(&c.Timezone, validation.Required, validation.By(validateTimezone)),
		validation.Field(&c.DefaultLanguage, validation.Required, validation.By(validateLanguage)),
		validation.Field(&c.FeedAllAtom, validation.By(validateFeedPath)),
		validation.Field(&c.CategoryFeedAtom, validation.By(validateFeedPath)),
		validation.Field(&c.TranslationFeedAtom, validation.By(validateFeedPath)),
		validation.Field(&c.AuthorFeedAtom, validation.By(validateFeedPath)),
		validation.Field(&c.AuthorFeedRSS, validation.By(validateFeedPath)),
		validation.Field(&c.Links, validation.Required, validation.Each(validation.By(validateLink))),
		validation.Field(&c.SocialLinks, validation.Required, validation.Each(validation.By(validateLink))),
		validation.Field(&c.PaginationSize, validation.Required, validation.Min(1)),
	)
}

// Warnings reports settings that work on one machine only. They never fail
// Validate.
func (c SiteConfig) Warnings() []string {
	var out []string
	if filepath.IsAbs(c.ThemePath) || path.IsAbs(c.ThemePath) || driveLetterPath.MatchString(c.ThemePath) {
		out = append(out, fmt.Sprintf("theme_path %q is absolute; the site will only build on the machine that has it", c.ThemePath))
	}
	if strings.HasPrefix(c.SiteURL, "http://localhost") || strings.HasPrefix(c.SiteURL, "http://127.0.0.1") {
		out = append(out, fmt.Sprintf("site_url %q points at a local development server", c.SiteURL))
	}
	return out
}

func validateSiteURL(value interface{}) error {
	siteURL, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	parsedURL, err := url.Parse(siteURL)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}

	if parsedURL.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}

	return nil
}

func validateTimezone(value interface{}) error {
	tz, _ := value.(string)
	if _, err := time.LoadLocation(tz); err != nil {
		return validation.NewError("validation_invalid_timezone", "must be an IANA timezone name")
	}
	return nil
}

func validateLanguage(value interface{}) error {
	lang, _ := value.(string)
	if _, err := language.Parse(lang); err != nil {
		return validation.NewError("validation_invalid_language", "must be a locale code")
	}
	return nil
}

// validateFeedPath accepts a disabled (nil) feed or a relative output path.
func validateFeedPath(value interface{}) error {
	p, _ := value.(*string)
	if p == nil {
		return nil
	}
	if strings.TrimSpace(*p) == "" {
		return validation.NewError("validation_empty_feed", "cannot be empty; use null to disable the feed")
	}
	if path.IsAbs(*p) || driveLetterPath.MatchString(*p) {
		return validation.NewError("validation_absolute_feed", "must be relative to the output directory")
	}
	return nil
}

func validatePathOverrides(value interface{}) error {
	overrides, _ := value.(map[string]PathOverride)
	for src, o := range overrides {
		if strings.TrimSpace(src) == "" {
			return validation.NewError("validation_empty_source", "source path cannot be empty")
		}
		if strings.TrimSpace(o.Path) == "" {
			return validation.NewError("validation_empty_override", "override for "+src+" needs a path")
		}
	}
	return nil
}

func validateLink(value interface{}) error {
	link, ok := value.(Link)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a Link")
	}
	if strings.TrimSpace(link.Label) == "" {
		return validation.NewError("validation_empty_label", "link label cannot be empty")
	}
	if strings.TrimSpace(link.URL) == "" {
		return validation.NewError("validation_empty_url", "link URL cannot be empty")
	}
	return nil
}
