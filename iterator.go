package mtlist

// Iterator is the per-step handle yielded by Iterate.
type Iterator struct {
	elem    *Elem
	removed bool
}

// Elem returns the element currently yielded by Iterate.
func (it *Iterator) Elem() *Elem {
	return it.elem
}

// Remove marks the currently yielded element for removal from the
// list; the removal is committed once the current step's body
// returns.
func (it *Iterator) Remove() {
	it.removed = true
}

// Iterate safely walks the circular list starting at head, yielding
// every element exactly once to body in forward order. body returns
// false to stop the traversal early and true to continue to the next
// element.
//
// At every step, while body runs, the yielded element is isolated
// (both its own links held BUSY) and its two enclosing neighbors are
// each locked on the side facing it; the rest of the list remains
// fully operable by other goroutines, including other concurrent
// iterations, appends, inserts, deletes and pops anywhere that does
// not touch the currently-locked fields.
//
// Within body, the caller may perform operations on other lists, but
// must not attempt to lock this list from a second path: that would
// deadlock against the locks Iterate already holds for the current
// step. body must always return normally; a goroutine that never
// returns, or a panic that escapes Iterate, leaves locks held
// indefinitely and is forbidden by the protocol.
func (head *Elem) Iterate(body func(it *Iterator) bool) {
	pos := head
	for {
		n := acquireNextStep(pos)
		if n == head {
			pos.releaseNext(n)
			return
		}

		s := isolateStep(pos, n)

		it := &Iterator{elem: n}
		cont := body(it)

		if it.removed {
			pos.releaseNext(s)
			s.releasePrev(pos)
			n.next.Store(n)
			n.prev.Store(n)
		} else {
			pos.releaseNext(n)
			n.releasePrev(pos)
			n.next.Store(s)
			s.releasePrev(n)
			pos = n
		}

		if !cont {
			return
		}
	}
}

// acquireNextStep is iteration step 1: acquire the forward link from
// pos to the next candidate, retrying with backoff on contention until
// it succeeds.
func acquireNextStep(pos *Elem) *Elem {
	var bo backoff
	for {
		cand, ok := pos.acquireNext()
		if ok {
			return cand
		}
		bo.wait()
	}
}

// isolateStep is iteration step 2: fully isolate n (both its own
// links) and lock its successor's backward link, returning that
// successor. pos.next is already held BUSY by the caller with prior
// value n, so under a correctly-behaving protocol n.prev cannot have
// moved away from pos, and n.next's successor's prev cannot have moved
// away from n; the equality checks below are a defensive retry for
// that otherwise-unreachable case rather than a normal code path.
func isolateStep(pos, n *Elem) *Elem {
	var bo backoff
	for {
		next, ok := n.acquireNext()
		if !ok {
			bo.wait()
			continue
		}
		prev, ok := n.acquirePrev()
		if !ok {
			n.releaseNext(next)
			bo.wait()
			continue
		}
		if prev != pos {
			n.releaseNext(next)
			n.releasePrev(prev)
			bo.wait()
			continue
		}
		succPrev, ok := next.acquirePrev()
		if !ok {
			n.releaseNext(next)
			n.releasePrev(prev)
			bo.wait()
			continue
		}
		if succPrev != n {
			next.releasePrev(succPrev)
			n.releaseNext(next)
			n.releasePrev(prev)
			bo.wait()
			continue
		}
		return next
	}
}
