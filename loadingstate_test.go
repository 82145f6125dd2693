package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestNewLoadingState(t *testing.T) {
	ls := newLoadingState("accounts", "entries")

	be.Equal(t, 2, len(ls))
	be.False(t, ls["accounts"])
	be.False(t, ls["entries"])
}

func TestLoadingStateSetUnset(t *testing.T) {
	ls := newLoadingState("accounts", "entries")

	ls.set("accounts")
	be.True(t, ls["accounts"])
	be.False(t, ls["entries"])

	ls.unset("accounts")
	be.False(t, ls["accounts"])
}

func TestAllLoaded(t *testing.T) {
	ls := newLoadingState("accounts", "entries")

	ok, pending := ls.allLoaded()
	be.False(t, ok)
	be.Nonzero(t, pending)

	ls.set("accounts")
	ok, pending = ls.allLoaded()
	be.False(t, ok)
	be.Equal(t, "entries", pending)

	ls.set("entries")
	ok, pending = ls.allLoaded()
	be.True(t, ok)
	be.Zero(t, pending)
}
