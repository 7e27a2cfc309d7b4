package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"go.uber.org/zap"

	tc "github.com/reoring/teacollection"
	"github.com/reoring/teacollection/i18n"
	"github.com/reoring/teacollection/internal/logger"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "validate":
		return validateCmd(args[1:], stdout, stderr)
	case "sample":
		return sampleCmd(args[1:], stdout, stderr)
	case "convert":
		return convertCmd(args[1:], stdout, stderr)
	case "schema":
		return schemaCmd(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "teacollection CLI\n\nUsage:\n  teacollection validate [flags] FILE\n  teacollection sample [-yaml] [-o out]\n  teacollection convert -to json|yaml [flags] FILE\n  teacollection schema [-o out]\n\nNotes:\n  - validate prints every issue found and exits 1 when the collection is invalid.\n  - FILE may be JSON or YAML; the encoding is picked from the extension unless -format is given.")
}

// parseFlags are shared by validate and convert.
type parseFlags struct {
	format     string
	strictIDs  bool
	maxDepth   int
	maxBytes   int64
	duplicates string
	lang       string
	logLevel   string
	logFormat  string
}

func (p *parseFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.format, "format", "auto", "input encoding: auto, json or yaml")
	fs.BoolVar(&p.strictIDs, "strict-ids", false, "report malformed uuid values")
	fs.IntVar(&p.maxDepth, "max-depth", 0, "maximum nesting depth (0 = default, <0 = unlimited)")
	fs.Int64Var(&p.maxBytes, "max-bytes", 0, "maximum input size in bytes (0 = unlimited)")
	fs.StringVar(&p.duplicates, "dup", "error", "duplicate key handling: ignore, warn or error")
	fs.StringVar(&p.lang, "lang", "en", "message language: en or ja")
	fs.StringVar(&p.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&p.logFormat, "log-format", "console", "log format: console or json")
}

func (p *parseFlags) options(log *zap.Logger) tc.ParseOpt {
	return tc.ParseOpt{
		Strictness:        tc.Strictness{OnDuplicateKey: severity(p.duplicates)},
		MaxDepth:          p.maxDepth,
		MaxBytes:          p.maxBytes,
		StrictIdentifiers: p.strictIDs,
		Logger:            log,
	}
}

func severity(s string) tc.Severity {
	switch strings.ToLower(s) {
	case "ignore":
		return tc.Ignore
	case "warn":
		return tc.Warn
	default:
		return tc.Error
	}
}

// checkFile verifies that name is an existing, regular, non-empty file.
func checkFile(name string) error {
	if name == "" {
		return errors.New("file name not given")
	}
	st, err := os.Stat(name)
	if err != nil {
		return fmt.Errorf("file does not exist: %s: %w", name, err)
	}
	if !st.Mode().IsRegular() {
		return fmt.Errorf("file is not a regular file: %s", name)
	}
	if st.Size() == 0 {
		return fmt.Errorf("file is empty: %s", name)
	}
	return nil
}

func sourceFor(name, format string, data []byte) (tc.Source, error) {
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	switch format {
	case "json":
		return tc.JSONBytes(data), nil
	case "yaml":
		return tc.YAMLBytes(data), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// load reads and ingests the single file argument of fs.
func load(fs *flag.FlagSet, p *parseFlags, log *zap.Logger, stderr io.Writer) (*tc.Collection, int) {
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, exitUsage
	}
	name := fs.Arg(0)
	if err := checkFile(name); err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return nil, exitUsage
	}
	data, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: reading %s: %v\n", name, err)
		return nil, exitUsage
	}
	if p.maxBytes > 0 && int64(len(data)) > p.maxBytes {
		fmt.Fprintf(stderr, "ERROR: %s is larger than %d bytes\n", name, p.maxBytes)
		return nil, exitInvalid
	}
	src, err := sourceFor(name, p.format, data)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return nil, exitUsage
	}
	log.Debug("validating", zap.String("file", name), zap.String("format", src.Format()), zap.Int("bytes", len(data)))

	coll, err := tc.ParseFrom(context.Background(), src, p.options(log))
	if err != nil {
		iss, ok := tc.AsIssues(err)
		if !ok {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
			return nil, exitInvalid
		}
		fmt.Fprintf(stderr, "Collection not valid (%d issues):\n", len(iss))
		for _, m := range iss.Messages() {
			fmt.Fprintf(stderr, "  - %s\n", m)
		}
		return nil, exitInvalid
	}
	return coll, exitOK
}

func validateCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var p parseFlags
	var quiet bool
	p.register(fs)
	fs.BoolVar(&quiet, "q", false, "print nothing on success")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	i18n.SetLanguage(p.lang)
	log := logger.New(p.logLevel, p.logFormat)
	defer func() { _ = log.Sync() }()

	coll, code := load(fs, &p, log, stderr)
	if code != exitOK {
		return code
	}
	if !quiet {
		fmt.Fprintf(stdout, "OK: collection %s with %d artefacts\n", coll.ID(), len(coll.Artefacts()))
	}
	return exitOK
}

func sampleCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var asYAML bool
	var out string
	fs.BoolVar(&asYAML, "yaml", false, "emit YAML instead of JSON")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	return emit(tc.SampleCollection(), asYAML, out, stdout, stderr)
}

func convertCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var p parseFlags
	var to, out string
	p.register(fs)
	fs.StringVar(&to, "to", "json", "output encoding: json or yaml")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if to != "json" && to != "yaml" {
		fmt.Fprintf(stderr, "ERROR: unknown output encoding %q\n", to)
		return exitUsage
	}
	i18n.SetLanguage(p.lang)
	log := logger.New(p.logLevel, p.logFormat)
	defer func() { _ = log.Sync() }()

	coll, code := load(fs, &p, log, stderr)
	if code != exitOK {
		return code
	}
	return emit(coll, to == "yaml", out, stdout, stderr)
}

func schemaCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var out string
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	b, err := j.MarshalIndent(tc.JSONSchema(), "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: encoding schema: %v\n", err)
		return exitInvalid
	}
	return write(append(b, '\n'), out, stdout, stderr)
}

func emit(c *tc.Collection, asYAML bool, out string, stdout, stderr io.Writer) int {
	marshal := tc.Marshal
	if asYAML {
		marshal = tc.MarshalYAML
	}
	b, err := marshal(c)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: encoding: %v\n", err)
		return exitInvalid
	}
	return write(b, out, stdout, stderr)
}

func write(b []byte, out string, stdout, stderr io.Writer) int {
	if out == "" {
		_, _ = stdout.Write(b)
		return exitOK
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(stderr, "ERROR: creating output dir: %v\n", err)
			return exitUsage
		}
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		fmt.Fprintf(stderr, "ERROR: writing output: %v\n", err)
		return exitUsage
	}
	return exitOK
}
