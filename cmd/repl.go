package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/adriang/golox/report"
)

const historyFile = ".golox_history"

func repl() error {
	fmt.Println("golox REPL. Ctrl+C cancels input, Ctrl+D exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	rep := report.NewReporter(os.Stderr)
	for {
		line, err := ln.Prompt(">> ")
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			// io.EOF on Ctrl+D
			fmt.Println()
			return nil
		}

		if line == "" {
			continue
		}

		if replLine(line, rep, os.Stdout) {
			ln.AppendHistory(line)
		}
	}
}

// replLine scans one prompt line and reports whether it scanned cleanly.
// The reporter is reset afterwards so the next line starts fresh.
func replLine(line string, rep *report.WriterReporter, out io.Writer) bool {
	run(line, rep, out)
	ok := !rep.HadError()
	rep.Reset()
	return ok
}
