// Package mtlist implements a multi-thread-aware doubly-linked circular
// list. Many goroutines may concurrently append, insert, delete, pop,
// behead, and iterate a shared list; each operation locks only the link
// fields it needs to touch, via a single atomic exchange per field, so
// operations on distant parts of the list never contend.
//
// There is no separate head type: any Elem may play the role of a list
// head, and an empty list is a single node whose next and prev both
// point back to itself. The package does not allocate or free nodes;
// callers own node storage and must not free a node while another
// goroutine may still be operating on it.
package mtlist

import "sync/atomic"

// busyElem is never returned by NewElem and must never be embedded by
// a caller-owned node. &busyElem is the BUSY sentinel: a distinguished
// address that can never be a valid node.
var busyElem Elem

// busy is the BUSY sentinel: the value a link field holds while some
// goroutine owns it mid-operation.
var busy = &busyElem

// Elem is a node of a multi-thread-aware doubly-linked circular list.
// The zero value is not a usable node; use NewElem or Init.
type Elem struct {
	next atomic.Pointer[Elem]
	prev atomic.Pointer[Elem]
}

// NewElem returns a new, detached list node (self-looped in both
// directions), ready to be appended or inserted into a list.
func NewElem() *Elem {
	return new(Elem).Init()
}

// Init resets e to the detached state and returns e. Callers must only
// call Init on a node no other goroutine can be operating on.
func (e *Elem) Init() *Elem {
	e.next.Store(e)
	e.prev.Store(e)
	return e
}

// Next returns a snapshot of e's forward link. It performs no locking,
// so on a live list it may observe the BUSY sentinel mid-operation or a
// value that is stale by the time the caller inspects it; it is meant
// for walking a chain returned by Behead (whose links are stable once
// returned) or for diagnostics, not for navigating a live list.
func (e *Elem) Next() *Elem {
	return e.next.Load()
}

// Prev is the backward counterpart of Next; see its documentation for
// the same caveats.
func (e *Elem) Prev() *Elem {
	return e.prev.Load()
}

// acquireNext atomically exchanges e.next for BUSY and returns the
// value that was there before. ok is false if that prior value was
// itself BUSY: some other goroutine already owns the field, no
// restoration is needed, and the caller acquired nothing.
func (e *Elem) acquireNext() (prior *Elem, ok bool) {
	prior = e.next.Swap(busy)
	if prior == busy {
		return nil, false
	}
	return prior, true
}

// acquirePrev is the backward counterpart of acquireNext.
func (e *Elem) acquirePrev() (prior *Elem, ok bool) {
	prior = e.prev.Swap(busy)
	if prior == busy {
		return nil, false
	}
	return prior, true
}

// releaseNext writes a final (non-BUSY) value into e.next, ending
// ownership of the field. Passing the value acquireNext returned rolls
// the field back to its pre-acquire state; passing any other value
// commits a new link.
func (e *Elem) releaseNext(val *Elem) {
	e.next.Store(val)
}

// releasePrev is the backward counterpart of releaseNext.
func (e *Elem) releasePrev(val *Elem) {
	e.prev.Store(val)
}
