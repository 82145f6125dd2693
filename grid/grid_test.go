package grid

import (
	"testing"

	"github.com/carlmjohnson/be"

	"github.com/ledgerbook/ledgertui/ledger"
)

type widget struct {
	id   int64 // 0 = unsaved
	name string
}

func widgetID(w widget) RowID {
	if w.id == 0 {
		return UnsavedRow()
	}
	return PersistedRow(w.id)
}

func newWidgetController(rows ...widget) *Controller[widget] {
	c := New(widgetID, func() widget { return widget{} }, "name")
	c.SetPage(rows, ledger.PageMeta{
		Size:          50,
		TotalElements: len(rows),
		TotalPages:    1,
	})
	return c
}

func TestBeginCreate(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"})

	be.True(t, c.BeginCreate())
	be.Equal(t, 2, len(c.Rows()))
	be.Equal(t, 2, c.Meta().TotalElements)
	be.True(t, c.HasUnsaved())

	mode := c.Mode(UnsavedRow())
	be.Equal(t, ModeEdit, mode.Mode)
	be.Equal(t, "name", mode.FieldToFocus)
}

func TestBeginCreateIsGuarded(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"})

	be.True(t, c.BeginCreate())
	be.False(t, c.BeginCreate())

	// still exactly one unsaved row
	unsaved := 0
	for _, w := range c.Rows() {
		if widgetID(w).Unsaved() {
			unsaved++
		}
	}
	be.Equal(t, 1, unsaved)
	be.Equal(t, 2, c.Meta().TotalElements)
}

func TestCancelUnsavedRestoresCount(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"}, widget{id: 2, name: "two"})

	be.True(t, c.BeginCreate())
	be.Equal(t, 3, c.Meta().TotalElements)

	c.Cancel(UnsavedRow())

	be.Equal(t, 2, len(c.Rows()))
	be.Equal(t, 2, c.Meta().TotalElements)
	be.False(t, c.HasUnsaved())
	be.Equal(t, ModeView, c.Mode(UnsavedRow()).Mode)
}

func TestCancelPersistedRestoresSnapshot(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"})
	id := PersistedRow(1)

	be.True(t, c.BeginEdit(id))
	c.SetRow(id, widget{id: 1, name: "edited"})

	c.Cancel(id)

	row, ok := c.Row(id)
	be.True(t, ok)
	be.Equal(t, "one", row.name)

	mode := c.Mode(id)
	be.Equal(t, ModeView, mode.Mode)
	be.True(t, mode.IgnoreModifications)

	_, hasSnap := c.Snapshot(id)
	be.False(t, hasSnap)
}

func TestApplyCreateReplacesInPlace(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"}, widget{id: 2, name: "two"})

	be.True(t, c.BeginCreate())
	c.SetRow(UnsavedRow(), widget{name: "fresh"})

	before := len(c.Rows())
	c.ApplyCreate(widget{id: 42, name: "fresh"})

	be.Equal(t, before, len(c.Rows()))
	// the saved entity occupies the unsaved row's position
	be.Equal(t, int64(42), c.Rows()[2].id)
	be.False(t, c.HasUnsaved())
	be.Equal(t, ModeView, c.Mode(UnsavedRow()).Mode)
}

func TestFailedCreateKeepsRowInEdit(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"})

	be.True(t, c.BeginCreate())
	entered := widget{name: "typed but rejected"}
	c.SetRow(UnsavedRow(), entered)

	// commit failed server-side: no ApplyCreate, no Cancel

	be.True(t, c.HasUnsaved())
	be.Equal(t, ModeEdit, c.Mode(UnsavedRow()).Mode)

	row, ok := c.Row(UnsavedRow())
	be.True(t, ok)
	be.Equal(t, "typed but rejected", row.name)
	be.Equal(t, 2, c.Meta().TotalElements)
}

func TestApplyUpdate(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"})
	id := PersistedRow(1)

	be.True(t, c.BeginEdit(id))
	c.SetRow(id, widget{id: 1, name: "renamed"})
	c.ApplyUpdate(id, widget{id: 1, name: "renamed (canonical)"})

	row, _ := c.Row(id)
	be.Equal(t, "renamed (canonical)", row.name)
	be.Equal(t, ModeView, c.Mode(id).Mode)
}

func TestFailedUpdateRevertsToSnapshot(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"})
	id := PersistedRow(1)

	be.True(t, c.BeginEdit(id))
	c.SetRow(id, widget{id: 1, name: "rejected edit"})
	c.RevertToSnapshot(id)

	row, _ := c.Row(id)
	be.Equal(t, "one", row.name)
	// the row stays in edit mode for another attempt
	be.Equal(t, ModeEdit, c.Mode(id).Mode)
}

func TestRemove(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"}, widget{id: 2, name: "two"})

	c.Remove(PersistedRow(1))

	be.Equal(t, 1, len(c.Rows()))
	be.Equal(t, 1, c.Meta().TotalElements)
	_, ok := c.Row(PersistedRow(1))
	be.False(t, ok)

	// unknown rows are a no-op
	c.Remove(PersistedRow(99))
	be.Equal(t, 1, len(c.Rows()))
	be.Equal(t, 1, c.Meta().TotalElements)
}

func TestBeginEditUnknownRowIsNoOp(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"})

	be.False(t, c.BeginEdit(PersistedRow(99)))
	be.Equal(t, ModeView, c.Mode(PersistedRow(99)).Mode)
}

func TestPerRowInFlightGuard(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"}, widget{id: 2, name: "two"})

	be.True(t, c.TryAcquire(PersistedRow(1)))
	// a second commit for the same row is refused while one is in flight
	be.False(t, c.TryAcquire(PersistedRow(1)))
	// other rows are unaffected
	be.True(t, c.TryAcquire(PersistedRow(2)))

	c.Release(PersistedRow(1))
	be.True(t, c.TryAcquire(PersistedRow(1)))
}

func TestFetchCounter(t *testing.T) {
	c := newWidgetController()

	be.False(t, c.Fetching())

	// two overlapping requests: the first finishing must not clear the flag
	c.StartFetch()
	c.StartFetch()
	c.EndFetch()
	be.True(t, c.Fetching())

	c.EndFetch()
	be.False(t, c.Fetching())

	// never goes negative
	c.EndFetch()
	be.False(t, c.Fetching())
}

func TestSetPageResetsEditState(t *testing.T) {
	c := newWidgetController(widget{id: 1, name: "one"})

	be.True(t, c.BeginEdit(PersistedRow(1)))
	be.True(t, c.TryAcquire(PersistedRow(1)))

	c.SetPage([]widget{{id: 3, name: "three"}}, ledger.PageMeta{Size: 50, TotalElements: 1, TotalPages: 1, Number: 0})

	be.Equal(t, ModeView, c.Mode(PersistedRow(1)).Mode)
	be.True(t, c.TryAcquire(PersistedRow(1)))
	be.Equal(t, 1, len(c.Rows()))
}

func TestRowIDString(t *testing.T) {
	be.Equal(t, "7", PersistedRow(7).String())
	be.Equal(t, "*", UnsavedRow().String())
	be.True(t, UnsavedRow().Unsaved())
	be.False(t, PersistedRow(7).Unsaved())
}
