package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestLoadingStateTracksInitialFetches(t *testing.T) {
	ls := newLoadingState("campaigns", "overview")

	loaded, pending := ls.allLoaded()
	be.False(t, loaded)
	be.Nonzero(t, pending)

	ls.set("campaigns")
	loaded, pending = ls.allLoaded()
	be.False(t, loaded)
	be.Equal(t, "overview", pending)

	ls.set("overview")
	loaded, pending = ls.allLoaded()
	be.True(t, loaded)
	be.Equal(t, "", pending)
}

func TestLoadingStateUnsetForRefetch(t *testing.T) {
	ls := newLoadingState("campaigns")
	ls.set("campaigns")

	ls.unset("campaigns")

	loaded, pending := ls.allLoaded()
	be.False(t, loaded)
	be.Equal(t, "campaigns", pending)
}

func TestLoadingStateWithoutKeys(t *testing.T) {
	loaded, pending := newLoadingState().allLoaded()
	be.True(t, loaded)
	be.Equal(t, "", pending)
}
