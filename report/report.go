// Package report is the diagnostic sink for scan errors. The lexer hands
// every error here and keeps going; deciding whether to halt the pipeline
// is the caller's job, via HadError.
package report

import (
	"fmt"
	"io"
)

type Reporter interface {
	Error(line int, msg string)
}

type WriterReporter struct {
	w      io.Writer
	errCnt int
}

func NewReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w, 0}
}

func (r *WriterReporter) Error(line int, msg string) {
	fmt.Fprintf(r.w, "[line %d] Error: %s\n", line, msg)
	r.errCnt++
}

func (r *WriterReporter) HadError() bool { return r.errCnt > 0 }

// Reset clears the error state so a REPL can reuse one reporter
// across prompts.
func (r *WriterReporter) Reset() { r.errCnt = 0 }
