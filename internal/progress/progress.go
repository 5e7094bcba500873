// internal/progress/progress.go

// Package progress renders a live bar for parallel runs. It satisfies
// analysis.Observer; wiring it in (or not) never changes results.
package progress

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Bar wraps cheggaaa/pb behind the observer contract.
type Bar struct {
	out io.Writer
	bar *pb.ProgressBar
}

// New returns a bar that renders to out (normally stderr, so piped report
// output stays clean).
func New(out io.Writer) *Bar { return &Bar{out: out} }

func (b *Bar) Start(total int) {
	b.bar = pb.Full.New(total).SetWriter(b.out).Start()
}

func (b *Bar) Advance(string, string) {
	if b.bar != nil {
		b.bar.Increment()
	}
}

func (b *Bar) Done() {
	if b.bar != nil {
		b.bar.Finish()
	}
}
