// Package allocator keeps track of node allocations in memory so that a
// chain release can be checked for leaks and double releases.
package allocator

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func New(opts *Options) *Allocator {
	if opts == nil {
		opts = &Options{}
	}

	top := opts.FirstID
	if top == 0 {
		top = 1
	}

	return &Allocator{
		first:  top,
		top:    top,
		live:   map[uint64]struct{}{},
		logger: opts.Logger,
	}
}

type Allocator struct {
	m      sync.Mutex
	first  uint64
	top    uint64
	live   map[uint64]struct{}
	allocs uint64
	frees  uint64
	logger *logrus.Entry
}

func (a *Allocator) Alloc() uint64 {
	a.m.Lock()
	defer a.m.Unlock()

	id := a.top
	a.top++
	a.live[id] = struct{}{}
	a.allocs++
	return id
}

func (a *Allocator) Free(id uint64) error {
	a.m.Lock()
	defer a.m.Unlock()

	if id < a.first || id >= a.top {
		return a.fail(errors.Wrapf(ErrInvalidPointer, "id %d was never allocated", id))
	}
	if _, ok := a.live[id]; !ok {
		return a.fail(errors.Wrapf(ErrDoubleFree, "id %d already freed", id))
	}

	delete(a.live, id)
	a.frees++
	return nil
}

// Live returns the number of ids allocated and not yet freed.
func (a *Allocator) Live() int {
	a.m.Lock()
	defer a.m.Unlock()

	return len(a.live)
}

func (a *Allocator) Allocs() uint64 {
	a.m.Lock()
	defer a.m.Unlock()

	return a.allocs
}

func (a *Allocator) Frees() uint64 {
	a.m.Lock()
	defer a.m.Unlock()

	return a.frees
}

func (a *Allocator) Print() {
	a.m.Lock()
	defer a.m.Unlock()

	fmt.Printf("allocs -> %v, frees -> %v, live -> %v, top -> %v\n", a.allocs, a.frees, len(a.live), a.top)
}

func (a *Allocator) fail(err error) error {
	if a.logger != nil {
		a.logger.WithError(err).Warn("rejected free")
	}
	return err
}
