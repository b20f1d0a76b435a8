package roster

import (
	"encoding/json"
	"testing"
)

func TestNormalizeRepairsNilCollections(t *testing.T) {
	var d Document
	if err := json.Unmarshal([]byte(`{"active":true}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	d.Normalize()

	if d.List == nil || d.Statuses == nil || d.SubmittedUsers == nil {
		t.Fatalf("collections not repaired: %+v", d)
	}
	if !d.Active {
		t.Fatal("active flag lost")
	}
}

func TestDeleteItemReindexesStatuses(t *testing.T) {
	d := NewDocument()
	d.List = []string{"A", "B", "C"}
	d.SetStatus(2, StatusReady)
	d.SetStatus(3, StatusOff)

	d.DeleteItem(2)

	if len(d.List) != 2 || d.List[0] != "A" || d.List[1] != "C" {
		t.Fatalf("unexpected list: %v", d.List)
	}
	if _, ok := d.StatusOf(1); ok {
		t.Fatal("item 1 should have no status")
	}
	st, ok := d.StatusOf(2)
	if !ok || st != StatusOff {
		t.Fatalf("item 2 status = %q, %v; want off", st, ok)
	}
	if len(d.Statuses) != 1 {
		t.Fatalf("stale statuses remain: %v", d.Statuses)
	}
}

func TestDeleteItemOutOfRangeIsNoop(t *testing.T) {
	d := NewDocument()
	d.List = []string{"A"}
	d.SetStatus(1, StatusReady)

	before := d.Clone()
	d.DeleteItem(0)
	d.DeleteItem(2)

	if !d.Equal(before) {
		t.Fatalf("document changed: %+v", d)
	}
}

func TestMarkSubmittedIsOneShot(t *testing.T) {
	d := NewDocument()
	d.MarkSubmitted(42)
	d.MarkSubmitted(42)

	if len(d.SubmittedUsers) != 1 {
		t.Fatalf("submitted users = %v", d.SubmittedUsers)
	}
	if !d.HasSubmitted(42) {
		t.Fatal("user 42 not recorded")
	}
	if d.HasSubmitted(7) {
		t.Fatal("user 7 falsely recorded")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := NewDocument()
	d.Active = true
	d.List = []string{"A", "B"}
	d.SetStatus(1, StatusReady)
	d.MarkSubmitted(1)

	c := d.Clone()
	if !c.Equal(d) {
		t.Fatal("clone differs from original")
	}

	c.List[0] = "mutated"
	c.SetStatus(2, StatusOff)
	c.MarkSubmitted(2)

	if d.List[0] != "A" {
		t.Fatal("list shared between clone and original")
	}
	if _, ok := d.StatusOf(2); ok {
		t.Fatal("statuses shared between clone and original")
	}
	if d.HasSubmitted(2) {
		t.Fatal("submitted users shared between clone and original")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	d := NewDocument()
	d.Active = true
	d.List = []string{"A"}
	d.SetStatus(1, StatusReady)
	d.MarkSubmitted(1)
	d.AdminState = WorkflowDelete

	d.Reset()

	if !d.Equal(NewDocument()) {
		t.Fatalf("reset left state behind: %+v", d)
	}
}
