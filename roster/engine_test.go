package roster

import (
	"strings"
	"testing"
)

func activeDoc(items ...string) *Document {
	d := NewDocument()
	d.Active = true
	d.List = append(d.List, items...)
	return d
}

func TestCreateListOpensEmptyShift(t *testing.T) {
	d := NewDocument()
	d.List = []string{"stale"}
	d.SetStatus(1, StatusOff)
	d.MarkSubmitted(5)

	res := HandleAdmin(d, BtnCreateList)

	if res.Reply != ReplyPromptItems || !res.Changed {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !d.Active || len(d.List) != 0 || len(d.Statuses) != 0 || len(d.SubmittedUsers) != 0 {
		t.Fatalf("document not reset: %+v", d)
	}
}

func TestListBodyFillsEmptyActiveRoster(t *testing.T) {
	d := NewDocument()
	HandleAdmin(d, BtnCreateList)

	res := HandleAdmin(d, "Пост 1\n\n  Пост 2  \nПост 3")

	if !res.Changed {
		t.Fatal("expected document change")
	}
	want := []string{"Пост 1", "Пост 2", "Пост 3"}
	if len(d.List) != len(want) {
		t.Fatalf("list = %v", d.List)
	}
	for i, item := range want {
		if d.List[i] != item {
			t.Fatalf("list[%d] = %q; want %q", i, d.List[i], item)
		}
	}
	if !strings.HasPrefix(res.Reply, ReplyListCreated) {
		t.Fatalf("reply = %q", res.Reply)
	}
}

func TestShowCurrentAndFinalizeDoNotMutate(t *testing.T) {
	d := activeDoc("A", "B")
	d.SetStatus(1, StatusReady)
	before := d.Clone()

	show := HandleAdmin(d, BtnShowCurrent)
	final := HandleAdmin(d, BtnFinalize)

	if show.Changed || final.Changed {
		t.Fatalf("read-only operations reported changes: %+v %+v", show, final)
	}
	if !d.Equal(before) {
		t.Fatalf("document mutated: %+v", d)
	}
	if strings.Contains(show.Reply, "❌") {
		t.Fatalf("interim view marked unreported items: %q", show.Reply)
	}
	if !strings.Contains(final.Reply, "❌") {
		t.Fatalf("final view missing unreported marker: %q", final.Reply)
	}
}

func TestShowCurrentEmptyRoster(t *testing.T) {
	res := HandleAdmin(NewDocument(), BtnShowCurrent)
	if res.Reply != ReplyEmptyList || res.Changed {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCloseShiftKeepsRoster(t *testing.T) {
	d := activeDoc("A")
	d.SetStatus(1, StatusReady)

	res := HandleAdmin(d, BtnCloseShift)

	if d.Active {
		t.Fatal("shift still active")
	}
	if len(d.List) != 1 {
		t.Fatalf("list wiped: %v", d.List)
	}
	if !strings.HasPrefix(res.Reply, ReplyShiftClosed) {
		t.Fatalf("reply = %q", res.Reply)
	}
}

func TestFullResetWipesEverything(t *testing.T) {
	d := activeDoc("A")
	d.SetStatus(1, StatusOff)
	d.MarkSubmitted(9)
	d.AdminState = WorkflowDelete

	res := HandleAdmin(d, BtnFullReset)

	if res.Reply != ReplyFullReset || !res.Changed {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !d.Equal(NewDocument()) {
		t.Fatalf("state survived reset: %+v", d)
	}
}

func TestDeleteWorkflow(t *testing.T) {
	d := activeDoc("A", "B", "C")
	d.SetStatus(2, StatusReady)
	d.SetStatus(3, StatusOff)

	res := HandleAdmin(d, BtnDeleteItem)
	if res.Reply != ReplyPromptDelete || d.AdminState != WorkflowDelete {
		t.Fatalf("arming failed: %+v state=%q", res, d.AdminState)
	}

	res = HandleAdmin(d, "2")
	if res.Reply != ReplyItemDeleted || !res.Changed {
		t.Fatalf("resolve failed: %+v", res)
	}
	if d.AdminState != WorkflowIdle {
		t.Fatalf("workflow not disarmed: %q", d.AdminState)
	}
	if len(d.List) != 2 || d.List[1] != "C" {
		t.Fatalf("list = %v", d.List)
	}
	// The status that followed item C must follow it to its new number.
	if st, ok := d.StatusOf(2); !ok || st != StatusOff {
		t.Fatalf("status not renumbered: %v", d.Statuses)
	}
}

func TestDeleteWorkflowSilentOnBadInput(t *testing.T) {
	d := activeDoc("A", "B")
	HandleAdmin(d, BtnDeleteItem)

	for _, input := range []string{"abc", "0", "3", ""} {
		res := HandleAdmin(d, input)
		if res.Reply != "" || res.Changed {
			t.Fatalf("input %q: expected silent ignore, got %+v", input, res)
		}
		if d.AdminState != WorkflowDelete {
			t.Fatalf("input %q: workflow disarmed", input)
		}
	}
	if len(d.List) != 2 {
		t.Fatalf("list changed: %v", d.List)
	}
}

func TestStatusUpdateWorkflow(t *testing.T) {
	d := activeDoc("A", "B")

	res := HandleAdmin(d, BtnSetStatus)
	if res.Reply != ReplyPromptStatus || d.AdminState != WorkflowSetStatus {
		t.Fatalf("arming failed: %+v state=%q", res, d.AdminState)
	}

	res = HandleAdmin(d, "2 ready")
	if res.Reply != ReplyStatusUpdated || !res.Changed {
		t.Fatalf("resolve failed: %+v", res)
	}
	if st, ok := d.StatusOf(2); !ok || st != StatusReady {
		t.Fatalf("status not set: %v", d.Statuses)
	}
	if d.AdminState != WorkflowIdle {
		t.Fatalf("workflow not disarmed: %q", d.AdminState)
	}
}

func TestStatusUpdateWorkflowSilentOnBadInput(t *testing.T) {
	d := activeDoc("A", "B")
	HandleAdmin(d, BtnSetStatus)

	for _, input := range []string{"ready", "2", "2 done", "0 ready", "3 off", "2 ready now"} {
		res := HandleAdmin(d, input)
		if res.Reply != "" || res.Changed {
			t.Fatalf("input %q: expected silent ignore, got %+v", input, res)
		}
		if d.AdminState != WorkflowSetStatus {
			t.Fatalf("input %q: workflow disarmed", input)
		}
	}
}

func TestButtonsPreemptArmedWorkflow(t *testing.T) {
	d := activeDoc("A")
	HandleAdmin(d, BtnDeleteItem)

	// A menu press is never consumed as workflow input.
	res := HandleAdmin(d, BtnShowCurrent)
	if res.Reply == "" || res.Changed {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(d.List) != 1 {
		t.Fatalf("list changed: %v", d.List)
	}
}

func TestListBodyPreemptsArmedWorkflow(t *testing.T) {
	// An armed workflow on an active empty roster loses to the list body rule.
	d := NewDocument()
	d.Active = true
	d.AdminState = WorkflowDelete

	res := HandleAdmin(d, "5")

	if !res.Changed || len(d.List) != 1 || d.List[0] != "5" {
		t.Fatalf("list body rule not applied: %+v list=%v", res, d.List)
	}
	if d.AdminState != WorkflowIdle {
		t.Fatalf("workflow not cleared: %q", d.AdminState)
	}
}

func TestAdminNoopWhenIdle(t *testing.T) {
	d := activeDoc("A")
	before := d.Clone()

	res := HandleAdmin(d, "случайный текст")

	if res.Reply != "" || res.Changed {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !d.Equal(before) {
		t.Fatalf("document mutated: %+v", d)
	}
}

func TestParticipantSubmission(t *testing.T) {
	d := activeDoc("A", "B")

	res := HandleParticipant(d, 100, "Готов 2")

	if res.Reply != ReplyAccepted || !res.Changed {
		t.Fatalf("unexpected result: %+v", res)
	}
	if st, ok := d.StatusOf(2); !ok || st != StatusReady {
		t.Fatalf("status not recorded: %v", d.Statuses)
	}
	if !d.HasSubmitted(100) {
		t.Fatal("submission not marked")
	}
}

func TestParticipantSecondSubmissionRejected(t *testing.T) {
	d := activeDoc("A", "B")
	HandleParticipant(d, 100, "Готов 1")
	before := d.Clone()

	res := HandleParticipant(d, 100, "выход 2")

	if res.Reply != ReplyAlreadyDone || res.Changed {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !d.Equal(before) {
		t.Fatalf("rejected submission mutated document: %+v", d)
	}
}

func TestParticipantIgnoredWhenInactive(t *testing.T) {
	d := NewDocument()
	d.List = []string{"A"}

	res := HandleParticipant(d, 100, "Готов 1")

	if res.Reply != "" || res.Changed {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestParticipantUnparsableIgnored(t *testing.T) {
	d := activeDoc("A")
	before := d.Clone()

	res := HandleParticipant(d, 100, "привет")

	if res.Reply != "" || res.Changed {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !d.Equal(before) {
		t.Fatalf("document mutated: %+v", d)
	}
	if d.HasSubmitted(100) {
		t.Fatal("failed parse consumed the one-shot submission")
	}
}

func TestAdminMenuCoversAllButtons(t *testing.T) {
	labels := map[string]bool{}
	for _, row := range AdminMenu() {
		for _, label := range row {
			labels[label] = true
		}
	}
	for _, btn := range []string{
		BtnCreateList, BtnShowCurrent, BtnSetStatus, BtnDeleteItem,
		BtnFinalize, BtnCloseShift, BtnFullReset,
	} {
		if !labels[btn] {
			t.Fatalf("menu missing button %q", btn)
		}
	}
}
