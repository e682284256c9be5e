package driver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/takoeight0821/lox/ast"
	"github.com/takoeight0821/lox/lexer"
	"github.com/takoeight0821/lox/parser"
	"github.com/takoeight0821/lox/utils"
)

// ErrReported is returned when diagnostics have already been written for the failing lines.
var ErrReported = errors.New("errors reported")

// Runner feeds source lines to the lexer and the parser and prints the result.
type Runner struct {
	line   int
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

type Option func(*Runner)

func WithOutput(out, errOut io.Writer) Option {
	return func(r *Runner) {
		r.out = out
		r.errOut = errOut
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		line:   1,
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Line returns the line number given to the next source line.
func (r *Runner) Line() int {
	return r.line
}

// RunSource lexes and parses one line of source.
func (r *Runner) RunSource(source string, line int) (ast.Node, error) {
	tokens, err := lexer.Lex(source, line)
	r.logger.Debug("lex", "line", line, "tokens", tokens)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}

	node, err := parser.NewParser(tokens).ParseExpr()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	r.logger.Debug("parse", "line", line, "column", node.Base().Column, "ast", node.String())

	return node, nil
}

// RunLine runs source as the next line, prints its rendering and reports errors.
// Blank lines produce no output but still advance the line counter.
func (r *Runner) RunLine(source string) error {
	line := r.line
	r.line++

	source = strings.TrimSuffix(source, "\r")
	if strings.TrimSpace(source) == "" {
		return nil
	}

	node, err := r.RunSource(source, line)
	if err != nil {
		utils.Report(r.errOut, line, err)
		return err
	}

	fmt.Fprintln(r.out, ast.Print(node))

	return nil
}

// RunFile runs every line of path in order.
// A failing line is reported and the following lines still run.
func (r *Runner) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return r.RunReader(f)
}

// RunReader runs every line read from src in order. Lines have no length limit.
func (r *Runner) RunReader(src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	// a final newline terminates the last line rather than starting a new one
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	failed := 0
	for _, line := range lines {
		if err := r.RunLine(line); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d line(s) failed", ErrReported, failed)
	}

	return nil
}
