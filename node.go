package veb

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// node is a van Emde Boas node over the universe [0, 2^t). Its min is
// cached here and never stored in a cluster; every other element x lives
// in clusters[high(x)] as low(x).
type node struct {
	t         uint8
	populated bool
	min       uint64
	max       uint64
	summary   *node
	clusters  map[uint64]*node
}

func newNode(t uint8) *node {
	return &node{t: t}
}

func (n *node) isEmpty() bool {
	return !n.populated
}

// emptyInsert puts x into a node known to be empty. It touches neither
// the summary nor the clusters.
func (n *node) emptyInsert(x uint64) {
	n.min = x
	n.max = x
	n.populated = true
}

// insert adds x and reports whether it was not already present.
func (n *node) insert(x uint64) bool {
	if !n.populated {
		n.emptyInsert(x)
		return true
	}
	if x == n.min || x == n.max {
		return false
	}
	if n.t == 1 {
		// a singleton {0} or {1} gaining the other element
		if x < n.min {
			n.min = x
		} else {
			n.max = x
		}
		return true
	}
	if x < n.min {
		x, n.min = n.min, x
	}
	h, l := high(n.t, x), low(n.t, x)
	c := n.follow(h)
	added := true
	if c.isEmpty() {
		n.summaryNode().insert(h)
		c.emptyInsert(l)
	} else {
		added = c.insert(l)
	}
	if x > n.max {
		n.max = x
	}
	return added
}

// follow returns cluster h, creating it empty if it doesn't exist yet.
func (n *node) follow(h uint64) *node {
	if n.clusters == nil {
		n.clusters = map[uint64]*node{}
	}
	c, ok := n.clusters[h]
	if !ok {
		c = newNode(lowBits(n.t))
		n.clusters[h] = c
	}
	return c
}

func (n *node) summaryNode() *node {
	if n.summary == nil {
		n.summary = newNode(highBits(n.t))
	}
	return n.summary
}

func (n *node) member(x uint64) bool {
	if !n.populated {
		return false
	}
	if x == n.min || x == n.max {
		return true
	}
	if n.t == 1 {
		return false
	}
	c := n.clusters[high(n.t, x)]
	if c == nil {
		return false
	}
	return c.member(low(n.t, x))
}

func (n *node) minimum() (uint64, bool) {
	return n.min, n.populated
}

func (n *node) maximum() (uint64, bool) {
	return n.max, n.populated
}

func (n *node) successor(x uint64) (uint64, bool) {
	if !n.populated || x >= n.max {
		return 0, false
	}
	if x < n.min {
		return n.min, true
	}
	if n.t == 1 {
		// x == 0 == min, and max == 1 since x < max
		return n.max, true
	}
	h, l := high(n.t, x), low(n.t, x)
	if c := n.clusters[h]; c != nil && c.populated && l < c.max {
		s, ok := c.successor(l)
		if !ok {
			panic(fmt.Sprintf("cluster %d has max %d but no successor of %d", h, c.max, l))
		}
		return index(n.t, h, s), true
	}
	if n.summary == nil {
		return 0, false
	}
	next, ok := n.summary.successor(h)
	if !ok {
		return 0, false
	}
	return index(n.t, next, n.clusters[next].min), true
}

func (n *node) predecessor(x uint64) (uint64, bool) {
	if !n.populated || x <= n.min {
		return 0, false
	}
	if x > n.max {
		return n.max, true
	}
	if n.t == 1 {
		// x == 1 == max, and min == 0 since x > min
		return n.min, true
	}
	h, l := high(n.t, x), low(n.t, x)
	if c := n.clusters[h]; c != nil && c.populated && l > c.min {
		p, ok := c.predecessor(l)
		if !ok {
			panic(fmt.Sprintf("cluster %d has min %d but no predecessor of %d", h, c.min, l))
		}
		return index(n.t, h, p), true
	}
	if n.summary != nil {
		if prev, ok := n.summary.predecessor(h); ok {
			return index(n.t, prev, n.clusters[prev].max), true
		}
	}
	// min is kept out of the clusters, so no cluster search can find it.
	return n.min, true
}

// iter visits the node's elements in ascending order, offset by base.
func (n *node) iter(base uint64, f func(uint64) error) error {
	if !n.populated {
		return nil
	}
	err := f(base + n.min)
	if err != nil {
		return err
	}
	if n.t == 1 || n.summary == nil {
		if n.max != n.min {
			return f(base + n.max)
		}
		return nil
	}
	return n.summary.iter(0, func(h uint64) error {
		return n.clusters[h].iter(base+index(n.t, h, 0), f)
	})
}

// descend visits the node's elements in descending order, offset by base.
func (n *node) descend(base uint64, f func(uint64) error) error {
	if !n.populated {
		return nil
	}
	if n.t > 1 && n.summary != nil {
		err := n.summary.descend(0, func(h uint64) error {
			return n.clusters[h].descend(base+index(n.t, h, 0), f)
		})
		if err != nil {
			return err
		}
	} else if n.max != n.min {
		err := f(base + n.max)
		if err != nil {
			return err
		}
	}
	return f(base + n.min)
}

func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	c := *n
	c.summary = n.summary.clone()
	if n.clusters != nil {
		c.clusters = make(map[uint64]*node, len(n.clusters))
		for h, child := range n.clusters {
			c.clusters[h] = child.clone()
		}
	}
	return &c
}

// validate checks the structural invariants of the subtree rooted at n.
func (n *node) validate() error {
	if n.t == 0 {
		return fmt.Errorf("%w: zero universe bits", ErrInvariant)
	}
	if n.t == 1 && (n.summary != nil || len(n.clusters) > 0) {
		return fmt.Errorf("%w: base case with children", ErrInvariant)
	}
	if !n.populated {
		if n.summary != nil && n.summary.populated {
			return fmt.Errorf("%w: empty node with non-empty summary", ErrInvariant)
		}
		for h, c := range n.clusters {
			if c.populated {
				return fmt.Errorf("%w: empty node with non-empty cluster %d", ErrInvariant, h)
			}
		}
		return nil
	}
	if n.min > n.max {
		return fmt.Errorf("%w: min %d > max %d", ErrInvariant, n.min, n.max)
	}
	if !inUniverse(n.t, n.max) {
		return fmt.Errorf("%w: max %d outside %d-bit universe", ErrInvariant, n.max, n.t)
	}
	if n.t == 1 {
		return nil
	}
	var populated []uint64
	for _, h := range n.sortedClusters() {
		c := n.clusters[h]
		if c.t != lowBits(n.t) {
			return fmt.Errorf("%w: cluster %d has %d bits, expected %d", ErrInvariant, h, c.t, lowBits(n.t))
		}
		err := c.validate()
		if err != nil {
			return fmt.Errorf("cluster %d: %w", h, err)
		}
		inSummary := n.summary != nil && n.summary.member(h)
		if c.populated != inSummary {
			return fmt.Errorf("%w: cluster %d populated=%v but in summary=%v", ErrInvariant, h, c.populated, inSummary)
		}
		if !c.populated {
			continue
		}
		if x := index(n.t, h, c.min); x <= n.min {
			return fmt.Errorf("%w: cluster %d holds %d, not above node min %d", ErrInvariant, h, x, n.min)
		}
		if x := index(n.t, h, c.max); x > n.max {
			return fmt.Errorf("%w: cluster %d holds %d, above node max %d", ErrInvariant, h, x, n.max)
		}
		populated = append(populated, h)
	}
	if n.summary != nil {
		if n.summary.t != highBits(n.t) {
			return fmt.Errorf("%w: summary has %d bits, expected %d", ErrInvariant, n.summary.t, highBits(n.t))
		}
		err := n.summary.validate()
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		if count := n.summary.count(); count != uint64(len(populated)) {
			return fmt.Errorf("%w: summary holds %d clusters, %d are populated", ErrInvariant, count, len(populated))
		}
	}
	if n.min == n.max {
		if len(populated) > 0 {
			return fmt.Errorf("%w: singleton node with populated clusters", ErrInvariant)
		}
		return nil
	}
	if len(populated) == 0 {
		return fmt.Errorf("%w: max %d not stored in any cluster", ErrInvariant, n.max)
	}
	last := populated[len(populated)-1]
	if x := index(n.t, last, n.clusters[last].max); x != n.max {
		return fmt.Errorf("%w: node max %d but largest clustered element is %d", ErrInvariant, n.max, x)
	}
	return nil
}

func (n *node) count() uint64 {
	var total uint64
	n.iter(0, func(uint64) error {
		total++
		return nil
	})
	return total
}

func (n *node) sortedClusters() []uint64 {
	keys := maps.Keys(n.clusters)
	slices.Sort(keys)
	return keys
}

func (n *node) string(indent string) string {
	var b strings.Builder
	if !n.populated {
		fmt.Fprintf(&b, "%st=%d {}\n", indent, n.t)
		return b.String()
	}
	fmt.Fprintf(&b, "%st=%d min=%d max=%d", indent, n.t, n.min, n.max)
	if n.t == 1 || len(n.clusters) == 0 {
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(" {\n")
	if n.summary != nil {
		b.WriteString(indent + "   summary:\n")
		b.WriteString(n.summary.string(indent + "      "))
	}
	for _, h := range n.sortedClusters() {
		fmt.Fprintf(&b, "%s   cluster %d:\n", indent, h)
		b.WriteString(n.clusters[h].string(indent + "      "))
	}
	b.WriteString(indent + "}\n")
	return b.String()
}
