// Command grisu2fmt formats floating-point literals as the shortest
// round-trippable decimal string, either one value at a time from the
// command line or in batch over a file of literals.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"runtime/debug"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/dlclark/regexp2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/loitsch/grisu2/ftoa"
	"github.com/loitsch/grisu2/internal/profilesum"
	"github.com/loitsch/grisu2/internal/srcpos"
)

// formatVersion is compared against -require-version constraints so callers
// can pin against the output format (not the Go module version).
const formatVersion = "1.0.0"

var (
	cpuprofile      = flag.String("cpuprofile", "", "write cpu profile to file")
	profileSummary  = flag.String("profile-summary", "", "read a captured CPU profile and print its hottest functions")
	batch           = flag.String("batch", "", "format every literal in this file, one per line")
	batchEncoding   = flag.String("batch-encoding", "", "character encoding of -batch (e.g. \"latin1\"); default UTF-8")
	corpus          = flag.String("corpus", "", "run a YAML-encoded table of {input, want} cases and report mismatches")
	single          = flag.Bool("f32", false, "format the input as a single-precision float")
	trailingDotZero = flag.Bool("trailing-zero", false, "append \".0\" to integer-valued fixed-notation output")
	nanSpelling     = flag.String("nan", "NaN", "spelling used for NaN")
	infSpelling     = flag.String("inf", "Infinity", "spelling used for Infinity")
	requireVersion  = flag.String("require-version", "", "fail unless this semver constraint matches the format version")
)

// digitSeparator matches the underscore digit separators permitted by
// ECMAScript numeric literals (e.g. "1_000_000.5"); stripping them lets a
// batch file carry the same literal syntax a caller would write in source.
var digitSeparator = regexp2.MustCompile(`(?<=[0-9])_(?=[0-9])`, regexp2.None)

// ParseError reports a malformed literal at a specific position within a
// batch input file.
type ParseError struct {
	File string
	Pos  srcpos.Position
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%s: %q: %v", e.File, e.Pos, e.Line, e.Err)
}

// CorpusError reports how many cases of a -corpus run produced unexpected
// output.
type CorpusError struct {
	Failed, Total int
}

func (e *CorpusError) Error() string {
	return fmt.Sprintf("%d of %d corpus cases failed", e.Failed, e.Total)
}

func normalizeLiteral(s string) (string, error) {
	out, err := digitSeparator.Replace(s, "", 0, -1)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func formatValue(value float64) string {
	buf := make([]byte, 32)
	n := ftoa.Dtoa(buf, value, *trailingDotZero, *nanSpelling, *infSpelling)
	return string(buf[:n])
}

func formatValue32(value float32) string {
	buf := make([]byte, 32)
	n := ftoa.Dtoa32(buf, value, *trailingDotZero, *nanSpelling, *infSpelling)
	return string(buf[:n])
}

// decodedReader wraps r so batch input may be read in a non-UTF-8 encoding,
// most commonly a Latin-1-encoded export from a legacy tool.
func decodedReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unknown -batch-encoding %q", encoding)
	}
}

func runBatch(path, encoding string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	decoded, err := decodedReader(f, encoding)
	if err != nil {
		return err
	}
	raw, err := ioutil.ReadAll(decoded)
	if err != nil {
		return err
	}
	src := string(raw)
	file := srcpos.NewFile(path, src)

	offset := 0
	scanner := bufio.NewScanner(strings.NewReader(src))
	for scanner.Scan() {
		line := scanner.Text()
		lineStart := offset
		offset += len(line) + 1

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		normalized, err := normalizeLiteral(trimmed)
		if err != nil {
			return &ParseError{File: file.Name(), Pos: file.Position(lineStart), Line: line, Err: err}
		}

		if *single {
			v, err := strconv.ParseFloat(normalized, 32)
			if err != nil {
				return &ParseError{File: file.Name(), Pos: file.Position(lineStart), Line: line, Err: err}
			}
			fmt.Println(formatValue32(float32(v)))
			continue
		}

		v, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			return &ParseError{File: file.Name(), Pos: file.Position(lineStart), Line: line, Err: err}
		}
		fmt.Println(formatValue(v))
	}
	return scanner.Err()
}

// corpusCase is one row of a -corpus YAML file.
type corpusCase struct {
	Input        float64 `yaml:"input"`
	Want         string  `yaml:"want"`
	TrailingZero bool    `yaml:"trailing_zero"`
}

func runCorpus(path string) error {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	var cases []corpusCase
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		return err
	}

	failed := 0
	for _, c := range cases {
		buf := make([]byte, 32)
		n := ftoa.Dtoa(buf, c.Input, c.TrailingZero, *nanSpelling, *infSpelling)
		got := string(buf[:n])
		if got != c.Want {
			fmt.Printf("FAIL: input=%v want=%q got=%q\n", c.Input, c.Want, got)
			failed++
		}
	}

	if failed > 0 {
		return &CorpusError{Failed: failed, Total: len(cases)}
	}
	fmt.Printf("PASS: %d cases\n", len(cases))
	return nil
}

func checkVersionConstraint(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid -require-version constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(formatVersion)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("format version %s does not satisfy %q", formatVersion, constraint)
	}
	return nil
}

func run() error {
	if *requireVersion != "" {
		if err := checkVersionConstraint(*requireVersion); err != nil {
			return err
		}
	}

	if *profileSummary != "" {
		return profilesum.PrintTop(os.Stdout, *profileSummary, 10)
	}

	if *corpus != "" {
		return runCorpus(*corpus)
	}

	if *batch != "" {
		return runBatch(*batch, *batchEncoding)
	}

	args := flag.Args()
	if len(args) == 0 {
		return fmt.Errorf("usage: grisu2fmt [flags] <value>...")
	}

	for _, arg := range args {
		normalized, err := normalizeLiteral(arg)
		if err != nil {
			return err
		}
		if *single {
			v, err := strconv.ParseFloat(normalized, 32)
			if err != nil {
				return err
			}
			fmt.Println(formatValue32(float32(v)))
			continue
		}
		v, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			return err
		}
		fmt.Println(formatValue(v))
	}
	return nil
}

func main() {
	defer func() {
		if x := recover(); x != nil {
			debug.Stack()
			panic(x)
		}
	}()
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		switch err := err.(type) {
		case *ParseError:
			fmt.Println(err.Error())
		case *CorpusError:
			fmt.Println(err.Error())
		default:
			fmt.Println(err)
		}
		os.Exit(64)
	}
}
