package statelabel

import "github.com/zjrosen/poststates/internal/log"

// TryRegister builds a Registry from states and lookup and attaches it to the
// dispatcher. On any configuration error it invokes onError (when non-nil)
// and returns nil; errors are never propagated to the caller.
func TryRegister(d Dispatcher, states []State, lookup LookupFunc, onError func(error)) *Registry {
	r, err := New(states, lookup)
	if err == nil {
		err = r.Attach(d)
	}
	if err != nil {
		log.Warn(log.CatState, "registration failed", "error", err.Error())
		if onError != nil {
			onError(err)
		}
		return nil
	}
	return r
}
