package mtlist_test

import (
	"fmt"
	"unsafe"

	mtlist "github.com/wtarreau/mt-list"
)

// task is a caller-defined structure that embeds an mtlist.Elem the
// way an intrusive list node is embedded inside a larger structure in
// C. taskFromLink below is the Go analogue of the C container_of
// macro: total and round-trips with the embedding, and needs no
// support from the core itself.
type task struct {
	name string
	link mtlist.Elem
}

var taskLinkOffset = unsafe.Offsetof(task{}.link)

// taskFromLink recovers the enclosing *task from a pointer to its
// embedded link field, the way mt_list's offset macro recovers a
// caller's structure from one of its list node addresses.
func taskFromLink(e *mtlist.Elem) *task {
	return (*task)(unsafe.Pointer(uintptr(unsafe.Pointer(e)) - taskLinkOffset))
}

// Example demonstrates embedding mtlist.Elem in a caller-owned
// structure, appending three such structures to a shared head, and
// recovering each one by address during a safe iteration.
func Example() {
	head := mtlist.NewElem()

	a := &task{name: "a"}
	b := &task{name: "b"}
	c := &task{name: "c"}
	a.link.Init()
	b.link.Init()
	c.link.Init()

	head.Append(&a.link)
	head.Append(&b.link)
	head.Append(&c.link)

	var names []string
	head.Iterate(func(it *mtlist.Iterator) bool {
		names = append(names, taskFromLink(it.Elem()).name)
		return true
	})

	fmt.Println(names)
	// Output: [a b c]
}
