// Command strata inspects text files through the storage engine: stats,
// streamed search, and line-number queries.
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/strataedit/strata/internal/engine/buffer"
	"github.com/strataedit/strata/internal/engine/lsppos"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	stats    bool
	find     string
	regex    string
	start    int
	line     int
	at       int
	populate int
	logLevel string
}

func run() int {
	opts, path := parseFlags()

	commonlog.Configure(verbosityFor(opts.logLevel), nil)

	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file")
		flag.Usage()
		return 2
	}

	buf, err := buffer.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.populate > 0 {
		buf.PopulateLineCache(0, opts.populate)
	}

	switch {
	case opts.stats:
		printStats(buf)
		return 0
	case opts.find != "":
		return findLiteral(buf, opts.find, opts.start)
	case opts.regex != "":
		return findRegex(buf, opts.regex, opts.start)
	case opts.line > 0:
		return printLine(buf, opts.line)
	case opts.at >= 0:
		return printLineNumber(buf, opts.at)
	default:
		printStats(buf)
		return 0
	}
}

func findLiteral(buf *buffer.Buffer, pattern string, start int) int {
	pos, ok := buf.FindNext(pattern, start)
	if !ok {
		fmt.Printf("pattern %q not found\n", pattern)
		return 1
	}
	reportMatch(buf, pos, start)
	return 0
}

func findRegex(buf *buffer.Buffer, pattern string, start int) int {
	re, err := regexp.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid regex: %v\n", err)
		return 2
	}
	pos, ok := buf.FindNextRegex(re, start)
	if !ok {
		fmt.Printf("pattern %q not found\n", pattern)
		return 1
	}
	reportMatch(buf, pos, start)
	return 0
}

func reportMatch(buf *buffer.Buffer, pos, start int) {
	line, col := buf.PositionToLineCol(pos)
	wrapped := ""
	if pos < start {
		wrapped = " (wrapped)"
	}
	fmt.Printf("found at offset %d, line %d, col %d%s\n", pos, line+1, col+1, wrapped)
}

// printLine prints the 1-indexed line and its byte range.
func printLine(buf *buffer.Buffer, line int) int {
	pos := buf.LineColToPosition(line-1, 0)
	start, text, ok := buf.Lines(pos).Next()
	if !ok || start != pos {
		fmt.Fprintf(os.Stderr, "Error: no line %d\n", line)
		return 1
	}
	fmt.Printf("%d [%d:%d] %s", line, start, start+len(text), text)
	if len(text) == 0 || text[len(text)-1] != '\n' {
		fmt.Println()
	}
	return 0
}

func printLineNumber(buf *buffer.Buffer, at int) int {
	ln := buf.LineNumber(at)
	lsp := lsppos.Position(buf, at)
	fmt.Printf("offset %d is on line %s (lsp %d:%d)\n", at, ln.Format(), lsp.Line, lsp.Character)
	return 0
}

func printStats(buf *buffer.Buffer) {
	snap := buf.Snapshot()
	fmt.Printf("path:         %s\n", buf.Path())
	fmt.Printf("bytes:        %d\n", buf.Len())
	fmt.Printf("tree height:  %d\n", snap.Tree.Height())
	fmt.Printf("chunk size:   %d\n", buf.Config().ChunkSize)
	fmt.Printf("max children: %d\n", buf.Config().MaxChildren)
	fmt.Printf("revision:     %d\n", buf.Revision())
	fmt.Printf("fingerprint:  %016x\n", buf.Fingerprint())
	if !buf.IsEmpty() {
		fmt.Printf("last line:    %s\n", buf.LineNumber(buf.Len()-1).Format())
	}
}

func parseFlags() (options, string) {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.BoolVar(&opts.stats, "stats", false, "Show storage statistics")
	flag.StringVar(&opts.find, "find", "", "Find first literal match at or after -start, wrapping around")
	flag.StringVar(&opts.regex, "regex", "", "Find first regex match at or after -start, wrapping around")
	flag.IntVar(&opts.start, "start", 0, "Byte offset searches begin at")
	flag.IntVar(&opts.line, "line", 0, "Print the given 1-indexed line")
	flag.IntVar(&opts.at, "at", -1, "Report the line number at the given byte offset")
	flag.IntVar(&opts.populate, "populate", 0, "Warm the line cache with this many line starts first")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Strata - text storage engine inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: strata [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  strata -stats file.go             Show storage statistics\n")
		fmt.Fprintf(os.Stderr, "  strata -find TODO file.go         Find the next TODO\n")
		fmt.Fprintf(os.Stderr, "  strata -regex 'fn \\w+' lib.rs     Regex search\n")
		fmt.Fprintf(os.Stderr, "  strata -at 4096 file.go           Line number at a byte offset\n")
		fmt.Fprintf(os.Stderr, "  strata -populate 500 -at 1 big.log  Warm the cache first\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Strata %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts, flag.Arg(0)
}

func verbosityFor(level string) int {
	switch level {
	case "debug":
		return 2
	case "error":
		return 0
	default:
		return 1
	}
}
