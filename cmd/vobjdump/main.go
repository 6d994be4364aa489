// Command vobjdump parses iCalendar/vCard files and dumps the
// component tree as YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/govobj/govobj"
	"github.com/govobj/govobj/vtype"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // user error or parse failure
)

const usage = `vobjdump - iCalendar/vCard parser and dump tool

Usage:
  vobjdump [options] [file ...]

Reads the given files (or stdin) and prints the parsed component tree
as YAML. Roots that parsed before a failure are still printed.

Options:
  -f FORMAT     Input format: ical, vcard, or auto (default auto,
                by file extension: .ics/.ical -> ical, .vcf/.vcard -> vcard)
  -typed        Decode dates, durations, periods, and recurrence rules
  -z NAME       Timezone for floating date-times (implies -typed)
  -v            Enable debug logging
  -vv           Enable trace logging (implies -v)
  -h, --help    Show help

Examples:
  vobjdump calendar.ics
  vobjdump -typed -z Europe/Paris calendar.ics
  vobjdump -f vcard contacts.vcf
`

func main() {
	os.Exit(run())
}

func run() int {
	var (
		format  = flag.String("f", "auto", "input format: ical, vcard, or auto")
		typed   = flag.Bool("typed", false, "decode semantic values")
		tzName  = flag.String("z", "", "timezone for floating date-times")
		verbose = flag.Bool("v", false, "debug logging")
		trace   = flag.Bool("vv", false, "trace logging")
	)
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	opts, err := buildOptions(*typed, *tzName, *verbose, *trace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vobjdump: %v\n", err)
		return exitError
	}

	files := flag.Args()
	if len(files) == 0 {
		return dump(os.Stdin, "-", *format, opts)
	}

	status := exitOK
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vobjdump: %v\n", err)
			status = exitError
			continue
		}
		if rc := dump(f, path, *format, opts); rc != exitOK {
			status = rc
		}
		f.Close()
	}
	return status
}

func buildOptions(typed bool, tzName string, verbose, trace bool) ([]govobj.Option, error) {
	var opts []govobj.Option

	if verbose || trace {
		level := slog.LevelDebug
		if trace {
			level = govobj.LevelTrace
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		opts = append(opts, govobj.WithLogger(slog.New(handler)))
	}

	if typed || tzName != "" {
		dec := vtype.Decoder{}
		if tzName != "" {
			loc, err := time.LoadLocation(tzName)
			if err != nil {
				return nil, fmt.Errorf("unknown timezone %q: %w", tzName, err)
			}
			dec.Location = loc
		}
		opts = append(opts, govobj.WithValueDecoder(dec))
	}
	return opts, nil
}

func dump(r io.Reader, path, format string, opts []govobj.Option) int {
	var (
		doc *govobj.Document
		err error
	)
	switch resolveFormat(format, path) {
	case "vcard":
		doc, err = govobj.ParseVCard(r, opts...)
	default:
		doc, err = govobj.ParseICal(r, opts...)
	}

	if len(doc.Components) > 0 {
		out, merr := yaml.Marshal(doc)
		if merr != nil {
			fmt.Fprintf(os.Stderr, "vobjdump: %s: %v\n", path, merr)
			return exitError
		}
		os.Stdout.Write(out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vobjdump: %s: %v\n", path, err)
		return exitError
	}
	return exitOK
}

func resolveFormat(format, path string) string {
	switch strings.ToLower(format) {
	case "ical", "vcard":
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vcf", ".vcard":
		return "vcard"
	}
	return "ical"
}
