package node

// The functions in this file break the exclusive ownership of a chain. They
// exist to observe what aliasing and cycles do to a chain and must not be
// used by regular code. InsertAtTheEnd never returns on a cyclic chain.

// AliasUnsafe returns a second head holding the same contents as n,
// including its id and its successor chain. Writes through GetMut on shared
// nodes are visible through both heads, and releasing both heads reports a
// double release.
func (n *Node[T]) AliasUnsafe() *Node[T] {
	alias := *n
	return &alias
}

// LinkUnsafe overwrites the successor slot of n with target. The previous
// successor chain is neither released nor returned. Linking to a node that
// precedes n creates a cycle.
func (n *Node[T]) LinkUnsafe(target *Node[T]) {
	n.next = target
}

// HasCycle reports whether following the successor links from n ever
// revisits a node.
func (n *Node[T]) HasCycle() bool {
	return n.meetingPoint() != nil
}

// meetingPoint runs the slow/fast pointer walk and returns the node where
// both pointers meet, or nil for an acyclic chain.
func (n *Node[T]) meetingPoint() *Node[T] {
	slow, fast := n, n
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return slow
		}
	}
	return nil
}

// cycleStart returns the first node of the cycle given a meeting point.
func (n *Node[T]) cycleStart(meet *Node[T]) *Node[T] {
	a, b := n, meet
	for a != b {
		a = a.next
		b = b.next
	}
	return a
}
