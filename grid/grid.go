// Package grid manages a paginated collection with inline row editing.
//
// A Controller owns one page of entities plus the per-row edit state: which
// rows are in edit mode, the pre-edit snapshot used to restore a row on
// cancel or failed save, and a per-row in-flight guard so a second commit
// cannot race one that is still talking to the server.
package grid

import (
	"strconv"

	"github.com/ledgerbook/ledgertui/ledger"
)

// RowID identifies a row in the collection: either a server-assigned ID or
// the single client-side unsaved row. It is comparable and used as a map key,
// which keeps the persisted/unsaved distinction out of string-typed keys.
type RowID struct {
	id      int64
	unsaved bool
}

// PersistedRow returns the RowID for a server-assigned identifier.
func PersistedRow(id int64) RowID {
	return RowID{id: id}
}

// UnsavedRow returns the RowID of the client-side row that has not been
// persisted yet. At most one such row exists per collection.
func UnsavedRow() RowID {
	return RowID{unsaved: true}
}

// Unsaved reports whether the row has no server identity.
func (r RowID) Unsaved() bool { return r.unsaved }

// Value returns the server-assigned identifier. Zero for unsaved rows.
func (r RowID) Value() int64 { return r.id }

func (r RowID) String() string {
	if r.unsaved {
		return "*"
	}
	return strconv.FormatInt(r.id, 10)
}

// Mode is the edit state of a single row.
type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

// ModeEntry carries a row's mode plus how it entered or left it.
type ModeEntry struct {
	Mode Mode
	// IgnoreModifications marks a View transition that discarded edits.
	IgnoreModifications bool
	// FieldToFocus names the field to focus when the row enters edit mode.
	FieldToFocus string
}

// Controller is the in-memory state machine for one editable collection.
// It never performs I/O; the caller reconciles server responses into it.
type Controller[E any] struct {
	content   []E
	meta      ledger.PageMeta
	modes     map[RowID]ModeEntry
	snapshots map[RowID]E
	inflight  map[RowID]struct{}
	fetching  int

	rowID      func(E) RowID
	blank      func() E
	focusField string
}

// New creates a controller. rowID extracts a row's identity, blank builds the
// defaults for a freshly created row, and focusField is queued for input
// focus whenever a new row enters edit mode.
func New[E any](rowID func(E) RowID, blank func() E, focusField string) *Controller[E] {
	return &Controller[E]{
		modes:      make(map[RowID]ModeEntry),
		snapshots:  make(map[RowID]E),
		inflight:   make(map[RowID]struct{}),
		rowID:      rowID,
		blank:      blank,
		focusField: focusField,
	}
}

// SetPage replaces the collection with a freshly loaded page. All edit state
// belongs to the previous page and is dropped.
func (c *Controller[E]) SetPage(content []E, meta ledger.PageMeta) {
	c.content = content
	c.meta = meta
	c.modes = make(map[RowID]ModeEntry)
	c.snapshots = make(map[RowID]E)
	c.inflight = make(map[RowID]struct{})
}

// Rows returns the rows of the current page in order.
func (c *Controller[E]) Rows() []E { return c.content }

// Meta returns the current page metadata. TotalElements tracks local
// additions and removals between loads.
func (c *Controller[E]) Meta() ledger.PageMeta { return c.meta }

// Row returns the row with the given identity.
func (c *Controller[E]) Row(id RowID) (E, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.content[i], true
	}
	var zero E
	return zero, false
}

// Mode returns the edit state for a row. Rows without an entry are in View.
func (c *Controller[E]) Mode(id RowID) ModeEntry { return c.modes[id] }

// InEdit reports whether the row is currently in edit mode.
func (c *Controller[E]) InEdit(id RowID) bool { return c.modes[id].Mode == ModeEdit }

// HasUnsaved reports whether the collection holds the unsaved row.
func (c *Controller[E]) HasUnsaved() bool { return c.indexOf(UnsavedRow()) >= 0 }

// Snapshot returns the pre-edit copy captured when the row entered edit mode.
func (c *Controller[E]) Snapshot(id RowID) (E, bool) {
	s, ok := c.snapshots[id]
	return s, ok
}

// BeginCreate appends a blank unsaved row in edit mode and bumps the
// displayed total. Refused while an unsaved row already exists, so calling it
// twice still yields exactly one unsaved row.
func (c *Controller[E]) BeginCreate() bool {
	if c.HasUnsaved() {
		return false
	}

	c.content = append(c.content, c.blank())
	c.meta.TotalElements++
	c.modes[UnsavedRow()] = ModeEntry{Mode: ModeEdit, FieldToFocus: c.focusField}

	return true
}

// BeginEdit moves an existing row into edit mode, capturing the snapshot
// restored on cancel or failed update. No-op for unknown rows.
func (c *Controller[E]) BeginEdit(id RowID) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}

	c.snapshots[id] = c.content[i]
	c.modes[id] = ModeEntry{Mode: ModeEdit}

	return true
}

// SetRow writes edited values into the row without changing its mode. Used
// when a commit is submitted so the table reflects what is being saved.
func (c *Controller[E]) SetRow(id RowID, row E) {
	if i := c.indexOf(id); i >= 0 {
		c.content[i] = row
	}
}

// Cancel leaves edit mode without persisting. An unsaved row is removed and
// the displayed total restored; a persisted row gets its snapshot back.
func (c *Controller[E]) Cancel(id RowID) {
	if id.Unsaved() {
		c.removeRow(id)
		return
	}

	if snap, ok := c.snapshots[id]; ok {
		c.SetRow(id, snap)
	}
	c.modes[id] = ModeEntry{Mode: ModeView, IgnoreModifications: true}
	delete(c.snapshots, id)
}

// ApplyCreate replaces the unsaved row in place with the server's canonical
// entity. The row count and position are unchanged; the row leaves edit mode.
func (c *Controller[E]) ApplyCreate(saved E) {
	if i := c.indexOf(UnsavedRow()); i >= 0 {
		c.content[i] = saved
	}

	delete(c.modes, UnsavedRow())
	delete(c.snapshots, UnsavedRow())
}

// ApplyUpdate replaces a persisted row with the server's canonical values and
// returns it to view mode.
func (c *Controller[E]) ApplyUpdate(id RowID, saved E) {
	c.SetRow(id, saved)
	c.modes[id] = ModeEntry{Mode: ModeView}
	delete(c.snapshots, id)
}

// RevertToSnapshot is the failed-update path: the displayed row reverts to
// its pre-edit values but stays in edit mode so the user can try again.
func (c *Controller[E]) RevertToSnapshot(id RowID) {
	if snap, ok := c.snapshots[id]; ok {
		c.SetRow(id, snap)
	}
}

// Remove drops a row and decrements the displayed total. For persisted rows
// the caller invokes this only after the server confirms the deletion.
func (c *Controller[E]) Remove(id RowID) {
	c.removeRow(id)
}

func (c *Controller[E]) removeRow(id RowID) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}

	c.content = append(c.content[:i], c.content[i+1:]...)
	c.meta.TotalElements--
	delete(c.modes, id)
	delete(c.snapshots, id)
	delete(c.inflight, id)
}

// TryAcquire claims the per-row request slot. It returns false while a commit
// or delete is already in flight for the row.
func (c *Controller[E]) TryAcquire(id RowID) bool {
	if _, busy := c.inflight[id]; busy {
		return false
	}
	c.inflight[id] = struct{}{}
	return true
}

// Release frees the per-row request slot.
func (c *Controller[E]) Release(id RowID) {
	delete(c.inflight, id)
}

// StartFetch increments the in-flight counter. A counter rather than a
// boolean: two overlapping requests cannot clear each other's flag.
func (c *Controller[E]) StartFetch() { c.fetching++ }

// EndFetch decrements the in-flight counter.
func (c *Controller[E]) EndFetch() {
	if c.fetching > 0 {
		c.fetching--
	}
}

// Fetching reports whether any request is in flight.
func (c *Controller[E]) Fetching() bool { return c.fetching > 0 }

func (c *Controller[E]) indexOf(id RowID) int {
	for i, row := range c.content {
		if c.rowID(row) == id {
			return i
		}
	}
	return -1
}
