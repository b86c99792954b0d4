/*
Package veb provides an ordered set of integers implemented as a van
Emde Boas tree. A tree covers a fixed universe [0, 2^t) for 1 <= t <= 64,
and answers Member, Successor and Predecessor queries, and performs
Insert, in O(lg lg U) time; Minimum and Maximum are O(1).

Uses

- Priority queues and schedulers over bounded integer keys (timer wheels,
port or id allocators)

- Fast "next free slot" and "previous occupied slot" queries

- Sorted enumeration of a sparse subset of a large integer range

How it works

Each node of universe exponent t splits an element x into high(x), the
top ceil(t/2) bits, and low(x), the bottom floor(t/2) bits. Elements with
the same high bits live together in a cluster, a child node of exponent
floor(t/2) holding their low bits. A summary child of exponent ceil(t/2)
records which clusters are non-empty. Every query recurses into at most
one cluster or into the summary, and each step halves the exponent, hence
the lg lg U bound.

The crucial detail is that every node caches its minimum and maximum,
and its minimum is never stored in a cluster. Inserting into an empty
node therefore just sets both fields, so an insertion that has to create
a new cluster and mark it in the summary only recurses into the summary;
the new cluster receives its first element in O(1).

Clusters are created lazily and kept in a map, so memory is proportional
to the number of elements rather than the size of the universe.

Deletion is not supported.

Concurrency

A Tree is not safe for concurrent modification. Use Clone() to hand an
independent copy to another goroutine.
*/
package veb
