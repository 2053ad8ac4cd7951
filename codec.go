package blogconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// Format is a serialization of the configuration record.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat is returned for a format other than yaml or json.
	ErrUnknownFormat = errors.New("blogconf: unknown format")
	// ErrMalformedLink is returned when a link is not a (label, url) pair.
	ErrMalformedLink = errors.New("blogconf: link must be a [label, url] pair")
)

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg SiteConfig, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("blogconf: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("blogconf: encode json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Decode reads a record from r. Values are taken as given; call Validate
// to lint them.
func Decode(r io.Reader, format Format) (SiteConfig, error) {
	var cfg SiteConfig
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return SiteConfig{}, fmt.Errorf("blogconf: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return SiteConfig{}, fmt.Errorf("blogconf: decode json: %w", err)
		}
	default:
		return SiteConfig{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize maps empty collections to nil. Neither format tells an empty
// list from an absent one, so decoded records always carry nil.
func (c *SiteConfig) normalize() {
	if len(c.StaticPaths) == 0 {
		c.StaticPaths = nil
	}
	if len(c.ExtraPathMetadata) == 0 {
		c.ExtraPathMetadata = nil
	}
	if len(c.Links) == 0 {
		c.Links = nil
	}
	if len(c.SocialLinks) == 0 {
		c.SocialLinks = nil
	}
}

// Marshal returns cfg encoded in the given format.
func Marshal(cfg SiteConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data in the given format.
func Unmarshal(data []byte, format Format) (SiteConfig, error) {
	return Decode(bytes.NewReader(data), format)
}

// Load reads the configuration file at path.
func Load(path string) (SiteConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return SiteConfig{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("blogconf: open config: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Save writes cfg to path, replacing any existing file atomically.
func Save(path string, cfg SiteConfig) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("blogconf: create pending file: %w", err)
	}
	defer pending.Cleanup()

	if err := Encode(pending, cfg, format); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("blogconf: replace %s: %w", path, err)
	}
	return nil
}

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{l.Label, l.URL})
}

func (l *Link) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedLink, err)
	}
	return l.fromPair(pair)
}

func (l Link) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []string{l.Label, l.URL} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: v,
			Style: yaml.DoubleQuotedStyle,
		})
	}
	return node, nil
}

func (l *Link) UnmarshalYAML(value *yaml.Node) error {
	var pair []string
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrMalformedLink, value.Line, err)
	}
	return l.fromPair(pair)
}

func (l *Link) fromPair(pair []string) error {
	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d elements", ErrMalformedLink, len(pair))
	}
	l.Label, l.URL = pair[0], pair[1]
	return nil
}
