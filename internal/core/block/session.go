package block

// NoTrigger marks an edit session with no active picker trigger.
const NoTrigger = -1

// Controller is the edit-session state machine. At most one block is ever in
// edit mode; every transition away from an editing block commits its buffer
// first, so an uncommitted buffer can never be lost.
type Controller struct {
	store *Store

	editing string // block id, empty while viewing
	buffer  string

	// Picker trigger state belongs to the edit session, not the detector.
	triggerIdx int
	query      string
}

// NewController creates a controller in the Viewing state.
func NewController(store *Store) *Controller {
	return &Controller{store: store, triggerIdx: NoTrigger}
}

// Editing returns the id of the block currently in edit mode.
func (c *Controller) Editing() (string, bool) {
	return c.editing, c.editing != ""
}

// Buffer returns the in-progress, uncommitted content.
func (c *Controller) Buffer() string { return c.buffer }

// SetBuffer replaces the in-progress content.
func (c *Controller) SetBuffer(content string) { c.buffer = content }

// Begin enters edit mode for the given block, committing any block that is
// already being edited. Beginning the block already in edit mode is a no-op.
func (c *Controller) Begin(id string) error {
	if c.editing == id {
		return nil
	}

	if err := c.Commit(); err != nil {
		return err
	}

	b, ok := c.store.Get(id)
	if !ok {
		return ErrNotFound
	}

	c.editing = id
	c.buffer = b.Content
	c.ClearTrigger()
	return nil
}

// Commit writes the buffer into the edited block's stored content. While
// viewing it is a no-op.
func (c *Controller) Commit() error {
	if c.editing == "" {
		return nil
	}
	return c.store.SetContent(c.editing, c.buffer)
}

// End commits the buffer and returns to the Viewing state.
func (c *Controller) End() error {
	if err := c.Commit(); err != nil {
		return err
	}
	c.editing = ""
	c.buffer = ""
	c.ClearTrigger()
	return nil
}

// SetTrigger records an open picker trigger for this session.
func (c *Controller) SetTrigger(idx int, query string) {
	c.triggerIdx = idx
	c.query = query
}

// ClearTrigger resets the picker trigger to none.
func (c *Controller) ClearTrigger() {
	c.triggerIdx = NoTrigger
	c.query = ""
}

// Trigger returns the active trigger offset and query.
func (c *Controller) Trigger() (idx int, query string, ok bool) {
	if c.triggerIdx == NoTrigger {
		return NoTrigger, "", false
	}
	return c.triggerIdx, c.query, true
}
