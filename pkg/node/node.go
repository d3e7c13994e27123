// Package node implements a singly linked list cell which exclusively owns
// the rest of the chain through its successor slot.
package node

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Tracker hands out ids for newly created nodes and takes them back on
// release. It is used to observe that every node is released exactly once.
type Tracker interface {
	Alloc() uint64
	Free(id uint64) error
}

type options struct {
	tracker Tracker
}

type Option func(*options)

func WithTracker(t Tracker) Option {
	return func(o *options) {
		o.tracker = t
	}
}

type Node[T any] struct {
	value   T
	next    *Node[T]
	id      uint64
	tracker Tracker
}

func New[T any](value T, opts ...Option) *Node[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return newNode(value, nil, o.tracker)
}

// FromValues builds a chain holding values in order. Returns nil for an
// empty slice.
func FromValues[T any](values []T, opts ...Option) *Node[T] {
	if len(values) == 0 {
		return nil
	}

	head := New(values[0], opts...)
	tail := head
	for _, v := range values[1:] {
		tail.next = newNode(v, nil, head.tracker)
		tail = tail.next
	}
	return head
}

func newNode[T any](value T, next *Node[T], tracker Tracker) *Node[T] {
	n := &Node[T]{value: value, next: next, tracker: tracker}
	if tracker != nil {
		n.id = tracker.Alloc()
	}
	return n
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) SetValue(value T) {
	n.value = value
}

func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Get returns a read-only view of the node at position i counting from n,
// or false if the chain is shorter than i+1.
func (n *Node[T]) Get(i int) (View[T], bool) {
	target, ok := n.walk(i)
	if !ok {
		return View[T]{}, false
	}
	return View[T]{target}, true
}

// GetMut is the same as Get but yields the node itself so its fields can be
// updated in place.
func (n *Node[T]) GetMut(i int) (*Node[T], bool) {
	return n.walk(i)
}

func (n *Node[T]) walk(i int) (*Node[T], bool) {
	if i < 0 {
		return nil, false
	}

	cur := n
	for ; i > 0 && cur != nil; i-- {
		cur = cur.next
	}
	return cur, cur != nil
}

// InsertBefore moves the current contents of n into a new successor node and
// overwrites n with value. The node previously at n's position keeps its
// contents and ends up one position later.
func (n *Node[T]) InsertBefore(value T) {
	moved := &Node[T]{
		value:   n.value,
		next:    n.next,
		id:      n.id,
		tracker: n.tracker,
	}

	n.value = value
	n.next = moved
	n.id = 0
	if n.tracker != nil {
		n.id = n.tracker.Alloc()
	}
}

func (n *Node[T]) InsertAtTheEnd(value T) {
	tail := n
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = newNode(value, nil, n.tracker)
}

// InsertInPlace splices a new node holding value right after n. The chain
// that followed n is moved, not copied, under the new node.
func (n *Node[T]) InsertInPlace(value T) {
	rest := n.Take()
	n.next = newNode(value, rest, n.tracker)
}

// Take moves the successor chain out of n, leaving n as a tail. Nothing is
// released; the caller becomes the owner of the returned chain.
func (n *Node[T]) Take() *Node[T] {
	next := n.next
	n.next = nil
	return next
}

func (n *Node[T]) Len() int {
	l := 0
	n.each(func(*Node[T]) bool {
		l++
		return true
	})
	return l
}

func (n *Node[T]) Values() []T {
	values := []T{}
	n.each(func(cur *Node[T]) bool {
		values = append(values, cur.value)
		return true
	})
	return values
}

// Release detaches every link of the chain starting at n and returns each
// node to its tracker. After Release, n is a detached tail.
func (n *Node[T]) Release() error {
	cur := n
	for pos := 0; cur != nil; pos++ {
		next := cur.Take()
		if cur.tracker != nil {
			if err := cur.tracker.Free(cur.id); err != nil {
				return errors.Wrapf(err, "failed to release node at position %d", pos)
			}
		}
		cur = next
	}
	return nil
}

func (n *Node[T]) String() string {
	buf := strings.Builder{}
	buf.WriteByte('[')
	first := true
	n.each(func(cur *Node[T]) bool {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		buf.WriteString(fmt.Sprintf("%v", cur.value))
		return true
	})
	if n.HasCycle() {
		buf.WriteString(" ...")
	}
	buf.WriteByte(']')
	return buf.String()
}

// each visits the chain in order. On a cyclic chain it stops after one lap.
func (n *Node[T]) each(fn func(cur *Node[T]) bool) {
	meet := n.meetingPoint()
	var lapStart *Node[T]
	if meet != nil {
		lapStart = n.cycleStart(meet)
	}

	lapped := false
	for cur := n; cur != nil; cur = cur.next {
		if cur == lapStart {
			if lapped {
				return
			}
			lapped = true
		}
		if !fn(cur) {
			return
		}
	}
}
