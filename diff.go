package veb

// DiffIter invokes the given callback for every element that is in only
// one of the two trees: added is true for elements of tr missing from
// old, removed is true for elements of old missing from tr. The iteration
// stops if the callback returns keepGoing==false or an error. The trees
// may have different universes.
func (tr *Tree) DiffIter(
	old *Tree,
	f func(added, removed bool, x uint64) (keepGoing bool, err error),
) error {
	cur, curOk := tr.Minimum()
	prev, prevOk := old.Minimum()
	for curOk || prevOk {
		var keepGoing bool
		var err error
		switch {
		case curOk && (!prevOk || cur < prev):
			keepGoing, err = f(true, false, cur)
			cur, curOk = tr.Successor(cur)
		case prevOk && (!curOk || prev < cur):
			keepGoing, err = f(false, true, prev)
			prev, prevOk = old.Successor(prev)
		default:
			keepGoing = true
			cur, curOk = tr.Successor(cur)
			prev, prevOk = old.Successor(prev)
		}
		if err != nil {
			return err
		}
		if !keepGoing {
			return nil
		}
	}
	return nil
}

// Equal reports whether both trees hold the same elements.
func (tr *Tree) Equal(other *Tree) bool {
	if tr.size != other.size {
		return false
	}
	same := true
	tr.DiffIter(other, func(_, _ bool, _ uint64) (bool, error) {
		same = false
		return false, nil
	})
	return same
}
