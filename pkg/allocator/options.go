package allocator

import "github.com/sirupsen/logrus"

type Options struct {
	// FirstID is the id handed out by the first Alloc. Zero is reserved for
	// untracked nodes, so a zero FirstID starts at 1.
	FirstID uint64
	Logger  *logrus.Entry
}
