// Package uithread pins binding work to one designated UI thread.
//
// Every listener callback and every property setter must run on the same
// goroutine so that a detach/mutate/reattach window can never interleave
// with another callback. Hosts either run a Loop, or own their own event
// loop (for example a terminal program's update loop) and claim it with
// Enter.
package uithread

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/go-drift/binder/pkg/errors"
)

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())

	owner atomic.Int64
)

// RegisterDispatch sets the function used to schedule callbacks on the UI thread.
// Hosts call this once during start-up.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread.
// Returns true if the callback was scheduled, false if no dispatch function
// is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// Enter claims the calling goroutine as the UI thread until release is called.
// It is meant for hosts whose event loop is owned by another library.
func Enter() (release func()) {
	id := goid()
	prev := owner.Swap(id)
	return func() {
		owner.CompareAndSwap(id, prev)
	}
}

// Claimed reports whether some goroutine currently owns the UI thread.
func Claimed() bool {
	return owner.Load() != 0
}

// OnThread reports whether the caller runs on the claimed UI thread.
// With no claimed thread every caller is considered on-thread.
func OnThread() bool {
	id := owner.Load()
	return id == 0 || id == goid()
}

// AssertOnThread returns a KindThread error when called off the UI thread.
func AssertOnThread(op, component string) error {
	if OnThread() {
		return nil
	}
	return &errors.BindError{
		Op:        op,
		Kind:      errors.KindThread,
		Component: component,
		Err:       fmt.Errorf("called from goroutine %d, UI thread is %d", goid(), owner.Load()),
	}
}

// goid parses the current goroutine id from the runtime stack header
// ("goroutine 18 [running]:").
func goid() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return -1
	}
	return id
}
