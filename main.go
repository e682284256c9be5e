package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/takoeight0821/lox/driver"
)

var level = new(slog.LevelVar)

func main() {
	const (
		inputUsage = "input file path"
	)
	var inputPath string
	var debug bool
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flag.BoolVar(&debug, "debug", false, "log tokens and syntax trees")

	flag.Parse()

	level.Set(slog.LevelWarn)
	if debug {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	r := driver.NewRunner(driver.WithLogger(logger))

	if inputPath == "" {
		err := RunPrompt(r)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		if err := r.RunFile(inputPath); err != nil {
			if !errors.Is(err, driver.ErrReported) {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(1)
		}
	}
}

var history = filepath.Join(xdg.DataHome, "lox", ".lox_history")

func RunPrompt(r *driver.Runner) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt(fmt.Sprintf("[%d] > ", r.Line()))
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if input == "exit" || input == "quit" {
			return nil
		}
		line.AppendHistory(input)
		// diagnostics are already reported by the runner
		_ = r.RunLine(input)
	}
}
