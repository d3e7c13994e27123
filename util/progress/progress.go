// Package progress prints a counter on a fixed interval. On a terminal the
// line is rewritten in place, otherwise every redraw is a separate line.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go-ownlist/util/helpers"
	"go-ownlist/util/timer"

	"golang.org/x/term"
)

type Printer struct {
	m       sync.Mutex
	out     io.Writer
	label   string
	total   uint64
	done    atomic.Uint64
	inPlace bool
	ticker  *timer.Ticker
}

func New(out io.Writer, label string, total uint64) *Printer {
	return &Printer{
		out:     out,
		label:   label,
		total:   total,
		inPlace: isTerminal(out),
	}
}

func (p *Printer) Add(n uint64) {
	p.done.Add(n)
}

func (p *Printer) Done() uint64 {
	return p.done.Load()
}

// Start redraws the counter every interval until Stop is called.
func (p *Printer) Start(interval time.Duration) {
	p.m.Lock()
	defer p.m.Unlock()

	if p.ticker != nil {
		return
	}
	p.ticker = timer.SetInterval(interval, p.tick)
}

// Stop stops the redraws and prints the final state.
func (p *Printer) Stop() {
	p.m.Lock()
	defer p.m.Unlock()

	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}

	p.draw()
	if p.inPlace {
		fmt.Fprintln(p.out)
	}
}

func (p *Printer) Print() {
	p.m.Lock()
	defer p.m.Unlock()

	p.draw()
}

// tick redraws unless Stop already ran, so nothing is written after Stop
// returns.
func (p *Printer) tick() {
	p.m.Lock()
	defer p.m.Unlock()

	if p.ticker != nil {
		p.draw()
	}
}

func (p *Printer) draw() {
	done := p.done.Load()
	line := fmt.Sprintf("%s %10d/%d (%5.1f%%)", p.label, done, p.total, helpers.Percent(done, p.total))
	if p.inPlace {
		fmt.Fprintf(p.out, "\r%s   ", line)
		return
	}
	fmt.Fprintln(p.out, line)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
