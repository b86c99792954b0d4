package veb

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Options sets parameters for a new tree.
type Options struct {
	// UniverseBits is the exponent t of the universe [0, 2^t). It must be
	// between 1 and 64, and can't be changed after the tree is created.
	UniverseBits uint8

	// Logger receives debug traces. Defaults to logrus.StandardLogger().
	Logger *logrus.Logger

	// Debug traces every insertion and validates the whole tree after
	// it, which is slow.
	Debug bool
}

// Tree is an ordered set of integers from a fixed universe [0, 2^t),
// stored as a van Emde Boas tree. Member, Insert, Successor and
// Predecessor take O(lg lg U) time; Minimum and Maximum are O(1).
//
// A Tree is not safe for concurrent mutation.
type Tree struct {
	root  *node
	size  uint64
	debug bool
	log   *logrus.Logger
}

// New returns an empty tree over the universe [0, 2^t).
func New(t uint8) (*Tree, error) {
	return NewWithOptions(&Options{UniverseBits: t})
}

// NewWithOptions returns an empty tree configured by the given options.
func NewWithOptions(options *Options) (*Tree, error) {
	if options == nil || options.UniverseBits == 0 || options.UniverseBits > MaxUniverseBits {
		var t uint8
		if options != nil {
			t = options.UniverseBits
		}
		return nil, fmt.Errorf("%d: %w", t, ErrUniverseBits)
	}
	tr := Tree{
		root:  newNode(options.UniverseBits),
		debug: options.Debug,
		log:   options.Logger,
	}
	if tr.log == nil {
		tr.log = logrus.StandardLogger()
	}
	if tr.debug {
		tr.log.WithFields(logrus.Fields{
			"op": "new", "bits": options.UniverseBits,
		}).Debugf("created tree")
	}
	return &tr, nil
}

// Insert adds x to the set. Inserting an element that is already present
// leaves the set unchanged. It returns ErrOutOfRange if x is outside the
// universe.
func (tr *Tree) Insert(x uint64) error {
	if !inUniverse(tr.root.t, x) {
		return fmt.Errorf("insert %d into %d-bit universe: %w", x, tr.root.t, ErrOutOfRange)
	}
	added := tr.root.insert(x)
	if added {
		tr.size++
	}
	if tr.debug {
		tr.log.WithFields(logrus.Fields{
			"op": "insert", "element": x, "added": added, "size": tr.size,
		}).Debugf("inserted")
		err := tr.Validate()
		if err != nil {
			tr.log.Debugf("after inserting %d:\n%s", x, tr)
			panic(err)
		}
	}
	return nil
}

// InsertAll inserts the given elements, stopping at the first one that is
// outside the universe.
func (tr *Tree) InsertAll(xs ...uint64) error {
	for _, x := range xs {
		err := tr.Insert(x)
		if err != nil {
			return err
		}
	}
	return nil
}

// Member reports whether x is in the set. Elements outside the universe
// are never members.
func (tr *Tree) Member(x uint64) bool {
	if !inUniverse(tr.root.t, x) {
		return false
	}
	return tr.root.member(x)
}

// Minimum returns the smallest element, or false if the set is empty.
func (tr *Tree) Minimum() (uint64, bool) {
	return tr.root.minimum()
}

// Maximum returns the largest element, or false if the set is empty.
func (tr *Tree) Maximum() (uint64, bool) {
	return tr.root.maximum()
}

// Successor returns the smallest element greater than x, or false if
// there is none. x need not be a member, and may lie outside the
// universe, in which case it has no successor.
func (tr *Tree) Successor(x uint64) (uint64, bool) {
	return tr.root.successor(x)
}

// Predecessor returns the largest element less than x, or false if there
// is none. x need not be a member; if it lies outside the universe its
// predecessor is the maximum.
func (tr *Tree) Predecessor(x uint64) (uint64, bool) {
	return tr.root.predecessor(x)
}

// Size returns the number of elements in the set.
func (tr *Tree) Size() uint64 {
	return tr.size
}

// IsEmpty reports whether the set has no elements.
func (tr *Tree) IsEmpty() bool {
	return tr.root.isEmpty()
}

// UniverseBits returns the exponent t of the tree's universe [0, 2^t).
func (tr *Tree) UniverseBits() uint8 {
	return tr.root.t
}

// Iter invokes f for every element in ascending order. If f returns
// ErrStopIter the iteration ends and Iter returns nil; any other error
// ends the iteration and is returned.
func (tr *Tree) Iter(f func(uint64) error) error {
	return stopped(tr.root.iter(0, f))
}

// Descend is like Iter, but in descending order.
func (tr *Tree) Descend(f func(uint64) error) error {
	return stopped(tr.root.descend(0, f))
}

// IterFrom is like Iter, but starts at the smallest element >= x.
func (tr *Tree) IterFrom(x uint64, f func(uint64) error) error {
	cur, ok := x, tr.Member(x)
	if !ok {
		cur, ok = tr.Successor(x)
	}
	for ok {
		err := f(cur)
		if err != nil {
			return stopped(err)
		}
		cur, ok = tr.Successor(cur)
	}
	return nil
}

func stopped(err error) error {
	if errors.Is(err, ErrStopIter) {
		return nil
	}
	return err
}

// Keys returns the elements in ascending order.
func (tr *Tree) Keys() []uint64 {
	keys := make([]uint64, 0, tr.size)
	tr.root.iter(0, func(x uint64) error {
		keys = append(keys, x)
		return nil
	})
	return keys
}

// Clone returns a copy of the tree that can be modified independently.
func (tr *Tree) Clone() *Tree {
	c := *tr
	c.root = tr.root.clone()
	return &c
}

// Validate checks the tree's structural invariants, returning an error
// wrapping ErrInvariant if any is violated.
func (tr *Tree) Validate() error {
	err := tr.root.validate()
	if err != nil {
		return err
	}
	if count := tr.root.count(); count != tr.size {
		return fmt.Errorf("%w: size is %d but %d elements are stored", ErrInvariant, tr.size, count)
	}
	return nil
}

// String renders the tree's node structure.
func (tr *Tree) String() string {
	return tr.root.string("")
}
