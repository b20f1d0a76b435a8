package roster

import "testing"

func TestRenderInterim(t *testing.T) {
	d := NewDocument()
	d.List = []string{"A", "B", "C"}
	d.SetStatus(1, StatusReady)
	d.SetStatus(3, StatusOff)

	got := Render(d, false)
	want := "✅ 1. A\n\n2. B\n\n🌙 3. C"
	if got != want {
		t.Fatalf("Render(false) = %q; want %q", got, want)
	}
}

func TestRenderFinalMarksUnreported(t *testing.T) {
	d := NewDocument()
	d.List = []string{"A", "B"}
	d.SetStatus(1, StatusReady)

	got := Render(d, true)
	want := "✅ 1. A\n\n❌ 2. B"
	if got != want {
		t.Fatalf("Render(true) = %q; want %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(NewDocument(), true); got != "" {
		t.Fatalf("Render on empty roster = %q; want empty", got)
	}
}
