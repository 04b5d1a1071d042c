// Package bind keeps a widget tree and an event stream in sync.
//
// Outbound, SetterFns returns a fresh map of property setters for a
// component; application code calls them whenever model state changes.
// Inbound, Bind walks a component tree once at setup time and attaches
// native listeners that turn user interactions into event.Event values
// pushed to a Sink.
//
// The two directions meet in a side table owned by the Binder that holds
// the primary listener attached to each component. Setters whose native
// mutation would fire that listener (selection and text) detach it, mutate,
// and reattach it, so a programmatic update is never echoed back as a user
// event.
//
// # Dispatch
//
// Both tables are keyed by runtime type. Concrete types match exactly;
// otherwise the most specific registered interface the component satisfies
// wins. Components of an unregistered type get an empty setter map and are
// ignored by Bind.
//
//	b := bind.New(bind.Options{})
//	q := event.NewQueue()
//	b.Bind(frame, q)
//
//	setters := b.SetterFns(nameField)
//	if set, ok := setters[bind.PropText]; ok {
//	    set(model.Name)
//	}
//
// # Threading
//
// Every call must happen on the UI thread (see package uithread). Nothing
// here locks around the detach/mutate/reattach window; single-threaded
// dispatch is what makes it atomic.
package bind
