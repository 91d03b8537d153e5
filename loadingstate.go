package main

// loadingState tracks which of the initial gateway fetches have
// completed. The session leaves the loading screen only once every
// tracked key has reported in.
type loadingState map[string]bool

func newLoadingState(keys ...string) loadingState {
	ls := make(loadingState, len(keys))
	for _, key := range keys {
		ls[key] = false
	}
	return ls
}

// set records that the fetch behind key has completed.
func (l loadingState) set(key string) { l[key] = true }

// unset puts key back into the pending state ahead of a refetch.
func (l loadingState) unset(key string) { l[key] = false }

// allLoaded reports whether every tracked fetch has completed, naming
// a still-pending key when one remains.
func (l loadingState) allLoaded() (bool, string) {
	for key, done := range l {
		if !done {
			return false, key
		}
	}
	return true, ""
}
