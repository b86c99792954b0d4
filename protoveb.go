package veb

import "fmt"

// maxProtoBits bounds protoNode universes, since every cluster is
// allocated up front.
const maxProtoBits = 16

// protoNode is the proto van Emde Boas structure: the same high/low split
// as node, but without cached extrema, so every element is stored all the
// way down to a two-element leaf. Queries cost O(lg U) rather than
// O(lg lg U); it serves as an independent check of the split arithmetic.
type protoNode struct {
	t        uint8
	bits     [2]bool
	summary  *protoNode
	clusters []*protoNode
}

func newProtoNode(t uint8) *protoNode {
	if t == 0 || t > maxProtoBits {
		panic(fmt.Sprintf("proto universe bits %d not in [1, %d]", t, maxProtoBits))
	}
	p := &protoNode{t: t}
	if t == 1 {
		return p
	}
	p.summary = newProtoNode(highBits(t))
	p.clusters = make([]*protoNode, 1<<highBits(t))
	for i := range p.clusters {
		p.clusters[i] = newProtoNode(lowBits(t))
	}
	return p
}

func (p *protoNode) insert(x uint64) {
	if p.t == 1 {
		p.bits[x] = true
		return
	}
	h := high(p.t, x)
	p.clusters[h].insert(low(p.t, x))
	p.summary.insert(h)
}

func (p *protoNode) member(x uint64) bool {
	if p.t == 1 {
		return p.bits[x]
	}
	return p.clusters[high(p.t, x)].member(low(p.t, x))
}

func (p *protoNode) minimum() (uint64, bool) {
	if p.t == 1 {
		switch {
		case p.bits[0]:
			return 0, true
		case p.bits[1]:
			return 1, true
		}
		return 0, false
	}
	h, ok := p.summary.minimum()
	if !ok {
		return 0, false
	}
	l, _ := p.clusters[h].minimum()
	return index(p.t, h, l), true
}

func (p *protoNode) maximum() (uint64, bool) {
	if p.t == 1 {
		switch {
		case p.bits[1]:
			return 1, true
		case p.bits[0]:
			return 0, true
		}
		return 0, false
	}
	h, ok := p.summary.maximum()
	if !ok {
		return 0, false
	}
	l, _ := p.clusters[h].maximum()
	return index(p.t, h, l), true
}

func (p *protoNode) successor(x uint64) (uint64, bool) {
	if p.t == 1 {
		if x == 0 && p.bits[1] {
			return 1, true
		}
		return 0, false
	}
	h, l := high(p.t, x), low(p.t, x)
	if s, ok := p.clusters[h].successor(l); ok {
		return index(p.t, h, s), true
	}
	next, ok := p.summary.successor(h)
	if !ok {
		return 0, false
	}
	s, _ := p.clusters[next].minimum()
	return index(p.t, next, s), true
}

func (p *protoNode) predecessor(x uint64) (uint64, bool) {
	if p.t == 1 {
		if x == 1 && p.bits[0] {
			return 0, true
		}
		return 0, false
	}
	h, l := high(p.t, x), low(p.t, x)
	if s, ok := p.clusters[h].predecessor(l); ok {
		return index(p.t, h, s), true
	}
	prev, ok := p.summary.predecessor(h)
	if !ok {
		return 0, false
	}
	s, _ := p.clusters[prev].maximum()
	return index(p.t, prev, s), true
}
