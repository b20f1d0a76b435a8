package roster

import "testing"

func TestParseSubmission(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		itemCount int
		want      Submission
		ok        bool
	}{
		{"ready with number", "Готов 2", 5, Submission{2, StatusReady}, true},
		{"off with number", "выходной 3", 5, Submission{3, StatusOff}, true},
		{"english ready", "ready 1", 5, Submission{1, StatusReady}, true},
		{"english off", "off 4", 5, Submission{4, StatusOff}, true},
		{"mixed case inflection", "ГотовА 2!", 5, Submission{2, StatusReady}, true},
		{"digits embedded", "пункт 3 готов", 5, Submission{3, StatusReady}, true},
		{"first digit run wins", "готов 2 и 4", 5, Submission{2, StatusReady}, true},
		{"no digits", "готов", 5, Submission{}, false},
		{"no keyword", "сегодня 2", 5, Submission{}, false},
		{"zero out of range", "готов 0", 5, Submission{}, false},
		{"above item count", "готов 6", 5, Submission{}, false},
		{"empty list", "готов 1", 0, Submission{}, false},
		{"empty text", "", 5, Submission{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseSubmission(tc.text, tc.itemCount)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ParseSubmission(%q, %d) = %+v, %v; want %+v, %v",
					tc.text, tc.itemCount, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestParseSubmissionReadyBeatsOff(t *testing.T) {
	// A message containing both keyword classes classifies as ready.
	got, ok := ParseSubmission("готов на выход 2", 5)
	if !ok || got.Status != StatusReady {
		t.Fatalf("got %+v, %v; want ready", got, ok)
	}
}
