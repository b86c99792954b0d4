package veb

import "math/bits"

// MaxUniverseBits is the largest supported universe exponent.
const MaxUniverseBits = 64

// lowBits is the number of bits addressing an element within a cluster.
func lowBits(t uint8) uint8 {
	return t / 2
}

// highBits is the number of bits selecting a cluster. It is the larger
// half when t is odd.
func highBits(t uint8) uint8 {
	return t - lowBits(t)
}

// clusterSize is the number of elements each cluster of a node with
// exponent t can hold.
func clusterSize(t uint8) uint64 {
	return 1 << lowBits(t)
}

func high(t uint8, x uint64) uint64 {
	return x >> lowBits(t)
}

func low(t uint8, x uint64) uint64 {
	return x & (clusterSize(t) - 1)
}

func index(t uint8, h, l uint64) uint64 {
	return h<<lowBits(t) | l
}

// universeMax is the largest element representable with exponent t.
func universeMax(t uint8) uint64 {
	if t >= MaxUniverseBits {
		return ^uint64(0)
	}
	return 1<<t - 1
}

func inUniverse(t uint8, x uint64) bool {
	return x <= universeMax(t)
}

// BitsFor returns the smallest universe exponent whose universe holds x.
func BitsFor(x uint64) uint8 {
	n := bits.Len64(x)
	if n == 0 {
		return 1
	}
	return uint8(n)
}
