package main

import (
	"fmt"
	"io"

	"go-ownlist/config"
	"go-ownlist/pkg/allocator"
	"go-ownlist/pkg/node"
	"go-ownlist/util/progress"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const blockSize = 1 << 10

// block is the large payload used by the stress scenario.
type block [blockSize]uint64

func fill(v uint64) block {
	var b block
	for i := range b {
		b[i] = v
	}
	return b
}

type demo struct {
	cfg *config.DemoConfig
	out io.Writer
	log *logrus.Entry
}

func newDemo(cfg *config.DemoConfig, out io.Writer, log *logrus.Entry) *demo {
	return &demo{cfg: cfg, out: out, log: log}
}

func (d *demo) run(scenario string) error {
	steps := map[string]func() error{
		"build":  d.build,
		"splice": d.splice,
		"alias":  d.alias,
		"cycle":  d.cycle,
		"stress": d.stress,
	}

	if scenario != "all" {
		fn, ok := steps[scenario]
		if !ok {
			return errors.Wrapf(config.ErrUnknownScenario, "'%s'", scenario)
		}
		return d.step(scenario, fn)
	}

	for _, name := range config.Scenarios {
		if name == "all" {
			continue
		}
		if err := d.step(name, steps[name]); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) step(name string, fn func() error) error {
	d.log.WithField("scenario", name).Info("start")
	if err := fn(); err != nil {
		return errors.Wrapf(err, "scenario %s", name)
	}
	d.log.WithField("scenario", name).Info("done")
	return nil
}

func (d *demo) tracker() *allocator.Allocator {
	return allocator.New(&allocator.Options{Logger: d.log.WithField("component", "allocator")})
}

func (d *demo) build() error {
	a := d.tracker()
	first := node.New(1, node.WithTracker(a))
	first.InsertAtTheEnd(2)
	first.InsertAtTheEnd(3)
	first.InsertAtTheEnd(4)

	for i := 0; i < first.Len(); i++ {
		v, _ := first.Get(i)
		fmt.Fprintf(d.out, "first[%d] = %d\n", i, v.Value())
	}
	if _, ok := first.Get(first.Len()); !ok {
		fmt.Fprintf(d.out, "first[%d] is absent\n", first.Len())
	}

	return d.release(a, first)
}

func (d *demo) splice() error {
	a := d.tracker()
	first := node.FromValues([]int{1, 2, 3, 4}, node.WithTracker(a))
	fmt.Fprintln(d.out, "chain:", first)

	first.InsertInPlace(222222)
	fmt.Fprintln(d.out, "insert in place 222222:", first)

	first.InsertBefore(0)
	fmt.Fprintln(d.out, "insert before 0:", first)

	third, ok := first.GetMut(3)
	if !ok {
		return errors.New("chain too short")
	}
	third.SetValue(333333)
	fmt.Fprintln(d.out, "first[3] = 333333:", first)

	return d.release(a, first)
}

// alias makes a second owner of the same chain, writes through one of them
// and releases both.
func (d *demo) alias() error {
	a := d.tracker()
	first := node.FromValues([]int{1, 2, 3, 4, 5}, node.WithTracker(a))
	copyOfFirst := first.AliasUnsafe()

	n, _ := first.GetMut(3)
	n.SetValue(44444)
	fmt.Fprintln(d.out, "first:        ", first)
	fmt.Fprintln(d.out, "copy of first:", copyOfFirst)

	if err := first.Release(); err != nil {
		return err
	}
	return d.expectDoubleFree(copyOfFirst.Release())
}

// cycle links the tail back to the head and releases the chain.
func (d *demo) cycle() error {
	a := d.tracker()
	first := node.FromValues([]int{1, 2, 3, 4, 5}, node.WithTracker(a))
	tail, _ := first.GetMut(first.Len() - 1)
	tail.LinkUnsafe(first)

	fmt.Fprintf(d.out, "cycle: %v, chain: %v\n", first.HasCycle(), first)
	err := d.expectDoubleFree(first.Release())
	if err != nil {
		return err
	}
	if a.Live() != 0 {
		return errors.Errorf("%d nodes still live after release", a.Live())
	}
	return nil
}

func (d *demo) stress() error {
	a := d.tracker()
	first := node.New(fill(0), node.WithTracker(a))

	p := progress.New(d.out, "inserting", uint64(d.cfg.Nodes))
	p.Start(d.cfg.ProgressInterval)
	cur := first
	for i := 1; i <= d.cfg.Nodes; i++ {
		cur.InsertInPlace(fill(uint64(i)))
		cur = cur.Next()
		p.Add(1)
	}
	p.Stop()

	d.log.WithFields(logrus.Fields{
		"nodes": first.Len(),
		"bytes": first.Len() * blockSize * 8,
		"live":  a.Live(),
	}).Info("chain created")

	mid, ok := first.GetMut(d.cfg.Nodes / 2)
	if !ok {
		return errors.New("chain too short")
	}
	mid.SetValue(fill(3))
	v, _ := first.Get(d.cfg.Nodes / 2)
	fmt.Fprintf(d.out, "first[%d][0] = %d\n", d.cfg.Nodes/2, v.Value()[0])

	return d.release(a, first)
}

type releaser interface {
	Release() error
}

func (d *demo) release(a *allocator.Allocator, head releaser) error {
	if err := head.Release(); err != nil {
		return errors.Wrap(err, "failed to release chain")
	}
	d.log.WithFields(logrus.Fields{
		"allocs": a.Allocs(),
		"frees":  a.Frees(),
		"live":   a.Live(),
	}).Debug("chain released")

	if a.Live() != 0 {
		return errors.Errorf("%d nodes leaked", a.Live())
	}
	return nil
}

func (d *demo) expectDoubleFree(err error) error {
	if errors.Cause(err) != allocator.ErrDoubleFree {
		return errors.Errorf("expected double free, got %v", err)
	}
	d.log.WithError(err).Info("double release detected")
	return nil
}
