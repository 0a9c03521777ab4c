package ui

// TargetKind says which collection a pending deletion points at.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetRating
	TargetWishlist
)

// DeleteConfirm is the two-phase deletion gate: idle until a delete is
// requested, then pending until the user confirms or cancels. Nothing
// is deleted without passing through the pending state. Only one
// target exists at a time; a new request replaces the previous one.
type DeleteConfirm struct {
	kind TargetKind
	id   string
	name string
}

// Request records a deletion target, replacing any prior pending one.
func (c *DeleteConfirm) Request(kind TargetKind, id, name string) {
	c.kind = kind
	c.id = id
	c.name = name
}

// Pending reports whether a confirmation is awaiting an answer.
func (c *DeleteConfirm) Pending() bool {
	return c.kind != TargetNone
}

// Target returns the pending target, or TargetNone when idle.
func (c *DeleteConfirm) Target() (TargetKind, string) {
	return c.kind, c.id
}

// Name returns the display name of the pending target.
func (c *DeleteConfirm) Name() string {
	return c.name
}

// Confirm hands out the target for deletion and returns to idle. The
// ok result is false when nothing was pending.
func (c *DeleteConfirm) Confirm() (kind TargetKind, id string, ok bool) {
	if c.kind == TargetNone {
		return TargetNone, "", false
	}
	kind, id = c.kind, c.id
	c.reset()
	return kind, id, true
}

// Cancel returns to idle without deleting.
func (c *DeleteConfirm) Cancel() {
	c.reset()
}

func (c *DeleteConfirm) reset() {
	c.kind = TargetNone
	c.id = ""
	c.name = ""
}
