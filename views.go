package blogconf

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// PreviewPage renders the settings a reader of the built site would notice:
// name, blogroll, social widget and footer. The footer is trusted markup.
func PreviewPage(cfg SiteConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			"<!doctype html>\n<html lang=\"%s\"><head><meta charset=\"utf-8\"><title>%s</title></head><body>\n<header><h1><a href=\"%s\">%s</a></h1><p>by %s</p></header>\n",
			templ.EscapeString(cfg.DefaultLanguage),
			templ.EscapeString(cfg.SiteName),
			templ.EscapeString(cfg.SiteURL),
			templ.EscapeString(cfg.SiteName),
			templ.EscapeString(cfg.Author),
		); err != nil {
			return err
		}
		if err := linkList("blogroll", "Blogroll", cfg.Links).Render(ctx, w); err != nil {
			return err
		}
		if err := linkList("social", "Social", cfg.SocialLinks).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<dl class=\"settings\">\n"); err != nil {
			return err
		}
		settings := [][2]string{
			{"theme_path", cfg.ThemePath},
			{"content_path", cfg.ContentPath},
			{"timezone", cfg.Timezone},
			{"pagination_size", strconv.Itoa(cfg.PaginationSize)},
		}
		for _, f := range cfg.Feeds() {
			settings = append(settings, [2]string{f.Name, f.Path})
		}
		for _, kv := range settings {
			if _, err := fmt.Fprintf(w, "<dt>%s</dt><dd>%s</dd>\n",
				templ.EscapeString(kv[0]), templ.EscapeString(kv[1])); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</dl>\n<footer>"); err != nil {
			return err
		}
		if err := templ.Raw(cfg.FooterText).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</footer>\n</body></html>\n")
		return err
	})
}

func linkList(class, title string, links []Link) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<section class=\"%s\"><h2>%s</h2><ul>\n",
			templ.EscapeString(class), templ.EscapeString(title)); err != nil {
			return err
		}
		for _, l := range links {
			if _, err := fmt.Fprintf(w, "<li><a href=\"%s\">%s</a></li>\n",
				templ.EscapeString(string(templ.URL(l.URL))), templ.EscapeString(l.Label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul></section>\n")
		return err
	})
}

// NotFoundPage points a lost visitor back at the preview.
func NotFoundPage(cfg SiteConfig, path string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<!doctype html>\n<html lang=\"%s\"><head><meta charset=\"utf-8\"><title>Not found - %s</title></head><body>\n<h1>Not found</h1><p>%s is not a setting of %s. <a href=\"/\">Back to the preview</a></p>\n</body></html>\n",
			templ.EscapeString(cfg.DefaultLanguage),
			templ.EscapeString(cfg.SiteName),
			templ.EscapeString(path),
			templ.EscapeString(cfg.SiteName),
		)
		return err
	})
}
