// Command uriparse splits absolute URIs into their components
// and percent-encodes or decodes strings.
//
// Usage:
//
//	uriparse [flags] [input ...]
//
// Inputs are read one per line from stdin when no arguments are given.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/errorutil"
	"github.com/ghettovoice/urisplit/internal/ioutil"
	"github.com/ghettovoice/urisplit/internal/log"
	"github.com/ghettovoice/urisplit/uri"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type schemesFlag uri.Schemes

func (f schemesFlag) String() string {
	kvs := make([]string, 0, len(f))
	for k, v := range f {
		kvs = append(kvs, k+"="+strconv.Itoa(int(v)))
	}
	return strings.Join(kvs, ",")
}

func (f schemesFlag) Set(v string) error {
	name, portStr, ok := strings.Cut(v, "=")
	if !ok {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("expected name=port, got %q", v))
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid port %q", portStr))
	}
	return errtrace.Wrap(uri.Schemes(f).Set(name, uint16(port)))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("uriparse", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts                         uri.ParseOptions
		schemes                      = uri.Schemes{}
		encode, decode, dev, verbose bool
	)
	fs.BoolVar(&opts.IPv6HostWithBrackets, "brackets", false, "keep brackets around IPv6 hosts")
	fs.BoolVar(&opts.Fragment, "fragment", false, "extract the #fragment component")
	fs.BoolVar(&opts.OptionalPort, "optional-port", false, "resolve a missing port without scheme default to 0")
	fs.Var(schemesFlag(schemes), "scheme", "register a scheme default port as name=port, 0 for none (repeatable)")
	fs.BoolVar(&encode, "encode", false, "percent-encode the inputs instead of parsing them")
	fs.BoolVar(&decode, "decode", false, "percent-decode the inputs instead of parsing them")
	fs.BoolVar(&dev, "dev", false, "use the developer log format")
	fs.BoolVar(&verbose, "v", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if encode && decode {
		fmt.Fprintln(stderr, "uriparse: -encode and -decode are mutually exclusive")
		return 2
	}

	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	logger := log.NewConsole(stderr, lvl)
	if dev {
		logger = log.NewDev(stderr, lvl)
	}

	if len(schemes) > 0 {
		opts.Schemes = schemes
	}
	opts.Log = logger

	inputs := fs.Args()
	if len(inputs) == 0 {
		var err error
		if inputs, err = readLines(stdin); err != nil {
			logger.LogAttrs(context.Background(), slog.LevelError, "failed to read inputs", slog.Any("error", err))
			return 1
		}
	}

	code := 0
	for _, in := range inputs {
		var err error
		switch {
		case encode:
			fmt.Fprintln(stdout, uri.Encode(in))
		case decode:
			var s string
			if s, err = uri.DecodeString(in); err == nil {
				fmt.Fprintln(stdout, s)
			}
		default:
			var u *uri.URI
			if u, err = uri.Parse(in, &opts); err == nil {
				err = writeURI(stdout, u)
			}
		}
		if err != nil {
			logger.LogAttrs(context.Background(), slog.LevelError, "failed to process input",
				slog.Any("input", log.StringValue(in)),
				slog.Any("error", err),
			)
			code = 1
		}
	}
	return code
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	return lines, errtrace.Wrap(sc.Err())
}

func writeURI(w io.Writer, u *uri.URI) error {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprintf("scheme=%s\n", u.Scheme)
	cw.Fprintf("user=%s\n", u.User)
	cw.Fprintf("host=%s\n", u.Host)
	cw.Fprintf("host_kind=%s\n", u.HostKind())
	cw.Fprintf("port=%d\n", u.Port)
	cw.Fprintf("path=%s\n", u.Path)
	cw.Fprintf("query=%s\n", u.Query)
	if u.Fragment != "" {
		cw.Fprintf("fragment=%s\n", u.Fragment)
	}
	cw.WriteString("\n")
	_, err := cw.Result()
	return errtrace.Wrap(err)
}
