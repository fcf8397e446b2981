//go:build swiccdebug

package assert

import "fmt"

func check(o *Owner) {
	id := GoroutineID()
	if !o.set {
		o.owner = id
		o.set = true
		return
	}
	if o.owner != id {
		panic(fmt.Sprintf("assert: %q touched by goroutine %d, previously owned by %d", o.name, id, o.owner))
	}
}
