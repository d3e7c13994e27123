package node

// View is a read-only handle to a node inside a chain.
type View[T any] struct {
	n *Node[T]
}

func (v View[T]) Value() T {
	return v.n.value
}

func (v View[T]) Next() (View[T], bool) {
	if v.n.next == nil {
		return View[T]{}, false
	}
	return View[T]{v.n.next}, true
}

func (v View[T]) Len() int {
	return v.n.Len()
}

func (v View[T]) Values() []T {
	return v.n.Values()
}

func (v View[T]) String() string {
	return v.n.String()
}
