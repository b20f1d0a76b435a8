// Package roster models the shared shift roster: the ordered item list,
// per-item statuses reported by participants, one-shot submission tracking,
// and the pending admin workflow step. The whole package operates on a single
// document that callers load, mutate, and persist as one transaction.
package roster

import "strconv"

// Status is a per-item readiness report.
type Status string

const (
	// StatusReady marks an item whose assignee reported in.
	StatusReady Status = "ready"
	// StatusOff marks an item whose assignee is off duty.
	StatusOff Status = "off"
)

// Workflow is the pending multi-turn admin command, if any.
type Workflow string

const (
	// WorkflowIdle means no admin command is waiting for an argument.
	WorkflowIdle Workflow = ""
	// WorkflowDelete means the next admin message is a delete target number.
	WorkflowDelete Workflow = "delete"
	// WorkflowSetStatus means the next admin message is "<number> <ready|off>".
	WorkflowSetStatus Workflow = "set_status"
)

// Document is the single persisted roster state. Field names match the
// legacy data.json layout so an existing store can be read as-is.
type Document struct {
	Active         bool              `json:"active"`
	List           []string          `json:"list"`
	Statuses       map[string]Status `json:"statuses"`
	SubmittedUsers []int64           `json:"submitted_users"`
	AdminState     Workflow          `json:"admin_state,omitempty"`
}

// NewDocument returns a document with all-default empty values.
func NewDocument() *Document {
	return &Document{
		List:           []string{},
		Statuses:       map[string]Status{},
		SubmittedUsers: []int64{},
	}
}

// Normalize repairs nil collections after JSON decoding so the rest of the
// package never has to nil-check them.
func (d *Document) Normalize() {
	if d.List == nil {
		d.List = []string{}
	}
	if d.Statuses == nil {
		d.Statuses = map[string]Status{}
	}
	if d.SubmittedUsers == nil {
		d.SubmittedUsers = []int64{}
	}
}

// Reset returns the document to defaults (inactive, empty).
func (d *Document) Reset() {
	*d = *NewDocument()
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{
		Active:         d.Active,
		List:           append([]string{}, d.List...),
		Statuses:       make(map[string]Status, len(d.Statuses)),
		SubmittedUsers: append([]int64{}, d.SubmittedUsers...),
		AdminState:     d.AdminState,
	}
	for k, v := range d.Statuses {
		c.Statuses[k] = v
	}
	return c
}

// Equal reports field-by-field equality of two documents.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Active != other.Active || d.AdminState != other.AdminState {
		return false
	}
	if len(d.List) != len(other.List) || len(d.Statuses) != len(other.Statuses) || len(d.SubmittedUsers) != len(other.SubmittedUsers) {
		return false
	}
	for i, item := range d.List {
		if other.List[i] != item {
			return false
		}
	}
	for k, v := range d.Statuses {
		if other.Statuses[k] != v {
			return false
		}
	}
	for i, id := range d.SubmittedUsers {
		if other.SubmittedUsers[i] != id {
			return false
		}
	}
	return true
}

// InRange reports whether n is a valid 1-based item number.
func (d *Document) InRange(n int) bool {
	return n >= 1 && n <= len(d.List)
}

// StatusOf returns the recorded status for item number n.
func (d *Document) StatusOf(n int) (Status, bool) {
	st, ok := d.Statuses[strconv.Itoa(n)]
	return st, ok
}

// SetStatus records a status for item number n, overwriting any prior report.
func (d *Document) SetStatus(n int, st Status) {
	d.Statuses[strconv.Itoa(n)] = st
}

// HasSubmitted reports whether the participant already used their one report.
func (d *Document) HasSubmitted(userID int64) bool {
	for _, id := range d.SubmittedUsers {
		if id == userID {
			return true
		}
	}
	return false
}

// MarkSubmitted records the participant's one-shot submission.
func (d *Document) MarkSubmitted(userID int64) {
	if d.HasSubmitted(userID) {
		return
	}
	d.SubmittedUsers = append(d.SubmittedUsers, userID)
}

// DeleteItem removes item number n and re-indexes the status map so that
// statuses keep following their items: entries above n shift down by one,
// the entry for n itself is dropped.
func (d *Document) DeleteItem(n int) {
	if !d.InRange(n) {
		return
	}
	d.List = append(d.List[:n-1], d.List[n:]...)

	reindexed := make(map[string]Status, len(d.Statuses))
	for key, st := range d.Statuses {
		num, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		switch {
		case num < n:
			reindexed[key] = st
		case num == n:
			// dropped together with the item
		default:
			reindexed[strconv.Itoa(num-1)] = st
		}
	}
	d.Statuses = reindexed
}
