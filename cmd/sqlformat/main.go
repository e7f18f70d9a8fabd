// Command sqlformat pretty-prints SQL.
//
// With no arguments it reads standard input and writes the result to
// standard output. With file arguments it processes each file, printing
// to standard output unless -w or -l is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/robomillo/sql-formatter/dialect"
	"github.com/robomillo/sql-formatter/format"
	"github.com/robomillo/sql-formatter/tokenizer"
)

var (
	write         = flag.Bool("w", false, "write result back to the source file instead of stdout")
	list          = flag.Bool("l", false, "list files whose formatting differs")
	compress      = flag.Bool("compress", false, "render on a single line instead of pretty-printing")
	stripComments = flag.Bool("strip-comments", false, "remove comments instead of pretty-printing")
	tokens        = flag.Bool("tokens", false, "dump the token stream instead of formatting")
	dialectName   = flag.String("dialect", "standard", "keyword dialect to tokenize with")
	indent        = flag.String("indent", "", "indentation unit (default two spaces)")
	color         = flag.Bool("color", false, "force ANSI color on stdout output")
	verbose       = flag.Bool("v", false, "log per-file details")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: sqlformat [flags] [path ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, ok := dialect.ByName(*dialectName)
	if !ok {
		log.Fatalf("unknown dialect %q (have: %s)", *dialectName, strings.Join(dialect.Names(), ", "))
	}
	tok, err := tokenizer.New(cfg)
	if err != nil {
		log.WithError(err).Fatal("building tokenizer")
	}
	f := format.New(tok, format.Options{Indent: *indent})
	if *color {
		format.SetColor(true)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		if *write {
			log.Fatal("cannot use -w with standard input")
		}
		if err := processStdin(f, tok); err != nil {
			log.WithError(err).Fatal("processing standard input")
		}
		return
	}

	failed := false
	for _, path := range paths {
		if err := processFile(f, tok, path); err != nil {
			log.WithError(err).WithField("file", path).Error("processing failed")
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func processStdin(f *format.Formatter, tok *tokenizer.Tokenizer) error {
	start := time.Now()
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	out, err := rewrite(f, tok, string(src))
	if err != nil {
		return err
	}
	out = ensureTrailingNewline(out)

	log.WithFields(log.Fields{
		"in_bytes":  len(src),
		"out_bytes": len(out),
		"elapsed":   time.Since(start),
	}).Debug("processed stdin")

	return print(f, out)
}

func processFile(f *format.Formatter, tok *tokenizer.Tokenizer, path string) error {
	start := time.Now()
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := rewrite(f, tok, string(src))
	if err != nil {
		return err
	}
	out = ensureTrailingNewline(out)
	changed := out != string(src)

	log.WithFields(log.Fields{
		"file":      path,
		"in_bytes":  len(src),
		"out_bytes": len(out),
		"changed":   changed,
		"elapsed":   time.Since(start),
	}).Debug("processed")

	if *list || *write {
		if *list && changed {
			fmt.Println(path)
		}
		if *write && changed {
			return os.WriteFile(path, []byte(out), 0o644)
		}
		return nil
	}
	return print(f, out)
}

// rewrite applies the selected transformation to src.
func rewrite(f *format.Formatter, tok *tokenizer.Tokenizer, src string) (string, error) {
	switch {
	case *tokens:
		return dumpTokens(tok, src)
	case *compress:
		return f.Compress(src)
	case *stripComments:
		return f.StripComments(src)
	default:
		return f.Format(src)
	}
}

// dumpTokens renders one KIND\ttext line per token. The text is quoted
// so embedded newlines stay on the line.
func dumpTokens(tok *tokenizer.Tokenizer, src string) (string, error) {
	ts, err := tok.Tokenize(src)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, t := range ts {
		fmt.Fprintf(&b, "%s\t%q\n", t.Kind, t.Text)
	}
	return b.String(), nil
}

func print(f *format.Formatter, out string) error {
	if *color && !*tokens {
		var err error
		if out, err = f.Highlight(out); err != nil {
			return err
		}
	}
	_, err := io.WriteString(os.Stdout, out)
	return err
}

func ensureTrailingNewline(s string) string {
	if s != "" && !strings.HasSuffix(s, "\n") {
		return s + "\n"
	}
	return s
}
