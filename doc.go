// Package await provides a Bubble Tea component that runs an asynchronous
// operation and renders a different view depending on whether the operation
// is pending, has produced a value, or has failed.
//
// The component tracks a three-variant [Phase]: Empty while the operation is
// outstanding, then exactly one of Success or Failure. The operation starts
// when the component is activated (its Init command runs), and its result is
// marshaled back onto the program's event loop as a [ResultMsg], so the phase
// transition is always applied on the same goroutine that renders. There are
// no intermediate phases and no retries; a torn-down component discards a
// late completion instead of applying it.
//
// # Usage
//
// Embed a [Model] in a parent Bubble Tea model:
//
//	fetch := await.New(
//	    func() (string, error) { return client.Greeting() },
//	    func(p await.Phase[string]) string {
//	        if v, ok := p.Value(); ok {
//	            return v
//	        }
//	        if err := p.Err(); err != nil {
//	            return "error: " + err.Error()
//	        }
//	        return "loading..."
//	    },
//	)
//
// Return fetch.Init() from the parent's Init, forward messages to fetch.Update
// from the parent's Update, and include fetch.View() in the parent's View.
//
// [NewView] is a convenience form taking only a success renderer and a
// placeholder renderer; with it a failed operation renders as the placeholder,
// indistinguishable from a pending one.
package await
