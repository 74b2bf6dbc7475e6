package mtlist

// lockLink fully locks the link from a to b: a to b is locked once
// a.next is held with prior value b and b.prev is held with prior
// value a. It acquires a.next expecting b, then b.prev expecting a; on
// any mismatch or contention it restores whatever it had already
// acquired and returns false, leaving both fields exactly as it found
// them.
//
// The caller is expected to retry (with backoff) on a false return: a
// mismatch means the a->b link the caller assumed no longer holds, not
// that the operation is inapplicable.
func lockLink(a, b *Elem) bool {
	aPrior, ok := a.acquireNext()
	if !ok {
		return false
	}
	if aPrior != b {
		a.releaseNext(aPrior)
		return false
	}
	bPrior, ok := b.acquirePrev()
	if !ok {
		a.releaseNext(aPrior)
		return false
	}
	if bPrior != a {
		a.releaseNext(aPrior)
		b.releasePrev(bPrior)
		return false
	}
	return true
}

// isolate locks both of node's own links, returning their prior values
// (its original prev and next neighbors). It never fails due to a value
// mismatch; only contention (another goroutine currently owns one of
// the fields) makes it return false, in which case nothing remains
// acquired.
func isolate(node *Elem) (prev, next *Elem, ok bool) {
	p, ok := node.acquirePrev()
	if !ok {
		return nil, nil, false
	}
	n, ok := node.acquireNext()
	if !ok {
		node.releasePrev(p)
		return nil, nil, false
	}
	return p, n, true
}

// release restores node's own links to the values isolate returned,
// undoing isolate with no net effect on the list.
func release(node *Elem, prev, next *Elem) {
	node.releasePrev(prev)
	node.releaseNext(next)
}
