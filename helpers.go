package blogconf

import (
	"net/url"
	"os"
	"path"
	"strings"
)

// ResolveURL joins a site-relative path onto the site URL. Fragments and
// absolute URLs are returned unchanged.
func ResolveURL(base, rel string) string {
	if rel == "" || strings.HasPrefix(rel, "#") {
		return rel
	}
	if r, err := url.Parse(rel); err == nil && r.IsAbs() {
		return rel
	}
	u, err := url.Parse(base)
	if err != nil {
		return rel
	}
	u.Path = path.Join("/", u.Path, rel)
	return u.String()
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
