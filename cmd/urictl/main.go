// urictl parses, normalizes, resolves and compares URI references from the command line.
//
// Usage:
//
//	urictl [flags] parse <uri>
//	urictl [flags] normalize <uri>
//	urictl [flags] resolve <base> <reference>
//	urictl [flags] equal <uri> <uri>
//	urictl [flags] query <query>
//
// The exit code is 1 on error and 2 when equal reports different URIs.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/log"
	"github.com/ghettovoice/urikit/uri"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			if msg := err.Error(); msg != "" {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func (e *exitError) ExitCode() int { return e.code }

var errNotEqual = &exitError{code: 2}

type config struct {
	reference    string
	scheme       string
	tolerant     bool
	unicode      bool
	domainHost   bool
	skipEscape   bool
	absolutePath bool
	debug        bool
	format       string
}

func (cfg *config) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfg.reference, "reference", "", "expected reference kind: same-document, relative, absolute, uri or suffix")
	fs.StringVar(&cfg.scheme, "scheme", "", "scheme handler to use instead of the parsed scheme")
	fs.BoolVar(&cfg.tolerant, "tolerant", false, "non-strict resolution and relaxed scheme checks")
	fs.BoolVar(&cfg.unicode, "unicode", false, "keep Unicode hosts as is")
	fs.BoolVar(&cfg.domainHost, "domain-host", false, "convert hosts to ASCII with IDNA")
	fs.BoolVar(&cfg.skipEscape, "skip-escape", false, "do not escape the path on serialization")
	fs.BoolVar(&cfg.absolutePath, "absolute-path", false, "keep dot-segments on serialization")
	fs.BoolVar(&cfg.debug, "debug", false, "log diagnostics to stderr")
	fs.StringVarP(&cfg.format, "format", "f", "text", "output format: text or yaml")
}

func (cfg *config) options(stderr io.Writer) (*uri.Options, error) {
	var errRef, errFmt error
	ref := uri.Reference(cfg.reference)
	if ref != "" && !ref.IsValid() {
		errRef = errorutil.NewInvalidArgumentError("reference kind %q", cfg.reference)
	}
	if cfg.format != "text" && cfg.format != "yaml" {
		errFmt = errorutil.NewInvalidArgumentError("output format %q", cfg.format)
	}
	if err := errorutil.Join(errRef, errFmt); err != nil {
		return nil, err
	}

	opts := &uri.Options{
		Reference:      ref,
		Scheme:         cfg.scheme,
		Tolerant:       cfg.tolerant,
		UnicodeSupport: cfg.unicode,
		DomainHost:     cfg.domainHost,
		SkipEscape:     cfg.skipEscape,
		AbsolutePath:   cfg.absolutePath,
	}
	if cfg.debug {
		opts.Logger = log.New(stderr, slog.LevelDebug, true)
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config

	fs := pflag.NewFlagSet("urictl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.addFlags(fs)
	fs.Usage = func() { printHelp(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	opts, err := cfg.options(stderr)
	if err != nil {
		return err
	}

	args = fs.Args()
	if len(args) == 0 {
		printHelp(fs, stderr)
		return errors.New("missing command")
	}

	cmd, args := args[0], args[1:]
	var want int
	switch cmd {
	case "parse", "normalize", "query":
		want = 1
	case "resolve", "equal":
		want = 2
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	if len(args) != want {
		return fmt.Errorf("%s expects %d argument(s), got %d", cmd, want, len(args))
	}

	out := &printer{w: stdout, yaml: cfg.format == "yaml"}
	switch cmd {
	case "parse":
		c, err := uri.Parse(args[0], opts)
		if err != nil {
			return err
		}
		if opts.Logger != nil {
			opts.Logger.Debug("URI parsed", slog.Any("components", log.FmtValue(c, false)))
		}
		return out.components(c)
	case "normalize":
		s, err := uri.Normalize(args[0], opts)
		if err != nil {
			return err
		}
		return out.value("uri", s)
	case "resolve":
		s, err := uri.Resolve(args[0], args[1], opts)
		if err != nil {
			return err
		}
		return out.value("uri", s)
	case "equal":
		eq := uri.Equal(args[0], args[1], opts)
		if err := out.value("equal", eq); err != nil {
			return err
		}
		if !eq {
			return errNotEqual
		}
		return nil
	default:
		vals, err := uri.ParseQuery(args[0])
		if err != nil {
			return err
		}
		return out.query(vals)
	}
}

type printer struct {
	w    io.Writer
	yaml bool
}

type parseResult struct {
	uri.Components `yaml:",inline"`

	Error string `yaml:"error,omitempty"`
}

func (p *printer) components(c *uri.Components) error {
	if p.yaml {
		res := parseResult{Components: *c}
		if c.Err != nil {
			res.Error = c.Err.Error()
		}
		return p.encode(res)
	}

	for _, kv := range []struct {
		k string
		v uri.Opt
	}{
		{"scheme", c.Scheme},
		{"userinfo", c.Userinfo},
		{"host", c.Host},
	} {
		if v, ok := kv.v.Get(); ok {
			fmt.Fprintf(p.w, "%-10s %s\n", kv.k+":", v)
		}
	}
	if c.Port.IsSet() {
		fmt.Fprintf(p.w, "%-10s %s\n", "port:", c.Port)
	}
	fmt.Fprintf(p.w, "%-10s %s\n", "path:", c.Path)
	if v, ok := c.Query.Get(); ok {
		fmt.Fprintf(p.w, "%-10s %s\n", "query:", v)
	}
	if v, ok := c.Fragment.Get(); ok {
		fmt.Fprintf(p.w, "%-10s %s\n", "fragment:", v)
	}
	fmt.Fprintf(p.w, "%-10s %s\n", "reference:", c.Reference)
	if c.Err != nil {
		fmt.Fprintf(p.w, "%-10s %v\n", "error:", c.Err)
	}
	return nil
}

func (p *printer) value(key string, v any) error {
	if p.yaml {
		return p.encode(map[string]any{key: v})
	}
	_, err := fmt.Fprintln(p.w, v)
	return err
}

func (p *printer) query(vals uri.Values) error {
	if p.yaml {
		return p.encode(vals)
	}
	s, err := uri.EncodeQuery(vals)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, s)
	return err
}

func (p *printer) encode(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func printHelp(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprint(w, `urictl parses, normalizes, resolves and compares URI references.

Usage:
  urictl [flags] parse <uri>
  urictl [flags] normalize <uri>
  urictl [flags] resolve <base> <reference>
  urictl [flags] equal <uri> <uri>
  urictl [flags] query <query>

Examples:
  urictl parse 'http://user@[fe80::1%25eth0]:8080/a/./b?q#f'
  urictl --format yaml parse urn:uuid:f81d4fae-7dec-11d0-a765-00a0c91e6bf6
  urictl resolve 'http://a/b/c/d;p?q' ../g
  urictl equal http://example.com/%7Ejoe HTTP://EXAMPLE.COM:80/~joe

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
