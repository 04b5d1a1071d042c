package bind

import "github.com/go-drift/binder/pkg/widget"

// WithoutListener runs mutate with the primary listener of c detached, then
// reattaches the same listener instance, even if mutate panics. Without an
// attached listener mutate simply runs.
func (b *Binder) WithoutListener(c widget.Component, mutate func()) {
	a, ok := b.slots.get(c)
	if !ok {
		mutate()
		return
	}
	a.detach()
	defer a.attach()
	mutate()
}
