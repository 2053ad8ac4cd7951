package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/eringen/blogconf"
)

func runShow(args []string, w io.Writer) error {
	rev := blogconf.Latest
	format := blogconf.FormatYAML
	for _, arg := range args {
		if f, err := blogconf.ParseFormat(arg); err == nil {
			format = f
			continue
		}
		r, err := blogconf.ParseRevision(arg)
		if err != nil {
			return err
		}
		rev = r
	}
	cfg, err := blogconf.Preset(rev)
	if err != nil {
		return err
	}
	return blogconf.Encode(w, cfg, format)
}

// runCheck reports false when the file loads but fails the lint.
func runCheck(path string, w io.Writer) (bool, error) {
	cfg, err := blogconf.Load(path)
	if err != nil {
		return false, err
	}

	for _, warn := range cfg.Warnings() {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}

	err = cfg.Validate()
	if err == nil {
		fmt.Fprintf(w, "%s: ok\n", path)
		return true, nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return false, err
	}
	keys := make([]string, 0, len(verrs))
	for k := range verrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "error: %s: %v\n", k, verrs[k])
	}
	return false, nil
}

func runInit(args []string, w io.Writer) error {
	path := args[0]
	rev := blogconf.Latest
	if len(args) > 1 {
		r, err := blogconf.ParseRevision(args[1])
		if err != nil {
			return err
		}
		rev = r
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file %q already exists", path)
	}

	cfg, err := blogconf.Preset(rev)
	if err != nil {
		return err
	}
	if err := blogconf.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "created %s (%s)\n", path, rev)
	return nil
}

// loadSource accepts either a configuration file or a revision name.
func loadSource(src string) (blogconf.SiteConfig, error) {
	if _, err := os.Stat(src); err == nil {
		return blogconf.Load(src)
	}
	rev, err := blogconf.ParseRevision(src)
	if err != nil {
		return blogconf.SiteConfig{}, fmt.Errorf("%q is neither a file nor a revision", src)
	}
	return blogconf.Preset(rev)
}

func runServe(ctx context.Context, src string, w io.Writer) error {
	cfg, err := loadSource(src)
	if err != nil {
		return err
	}
	srv := blogconf.NewServer(cfg, blogconf.WithAddr(blogconf.EnvOr("BLOGCONF_ADDR", ":3000")))
	fmt.Fprintf(w, "serving %s on %s\n", cfg.SiteName, srv.Addr())
	return srv.Start(ctx)
}
