package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/takoeight0821/lox/token"
	"gopkg.in/yaml.v3"
)

// PosError attaches a source position to an error.
// Its message uses the diagnostic format shown to users.
type PosError struct {
	Where token.Token
	Err   error
}

func (e PosError) Error() string {
	if e.Where.Kind == token.EOF {
		return fmt.Sprintf("[line %d] Error: at end: %s", e.Where.Line, e.Err.Error())
	}
	return fmt.Sprintf("[line %d] Error: at %d `%s`: %s", e.Where.Line, e.Where.Column, e.Where.Lexeme, e.Err.Error())
}

func (e PosError) Unwrap() error {
	return e.Err
}

// Errors flattens err into its PosErrors and other leaf errors,
// looking through wrappers and errors combined by errors.Join.
func Errors(err error) []error {
	switch e := err.(type) {
	case nil:
		return nil
	case PosError:
		return []error{e}
	case interface{ Unwrap() []error }:
		var flat []error
		for _, err := range e.Unwrap() {
			flat = append(flat, Errors(err)...)
		}
		return flat
	case interface{ Unwrap() error }:
		if inner := Errors(e.Unwrap()); hasPosError(inner) {
			return inner
		}
	}
	return []error{err}
}

func hasPosError(errs []error) bool {
	for _, err := range errs {
		if _, ok := err.(PosError); ok {
			return true
		}
	}
	return false
}

// Report writes one diagnostic per error in err.
// Errors without a position are reported against line.
func Report(w io.Writer, line int, err error) {
	for _, e := range Errors(err) {
		var pos PosError
		if errors.As(e, &pos) {
			fmt.Fprintln(w, pos.Error())
		} else {
			fmt.Fprintf(w, "[line %d] Error: %v\n", line, e)
		}
	}
}

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

// ReadTestDataFile reads a yaml testcase table from path.
func ReadTestDataFile(path string) ([]TestData, error) {
	s, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadTestData(s), nil
}

// FindSourceFiles returns the .lox files directly under dir in lexical order.
func FindSourceFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.lox"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
