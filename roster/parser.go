package roster

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// Keyword fragments recognized in free-text participant reports. Matching is
// case-insensitive and substring-based, so "Готово", "готова" and "ready!"
// all classify as ready.
var (
	readyKeywords = []string{"готов", "ready"}
	offKeywords   = []string{"выход", "off"}
)

// Submission is a successfully parsed participant report.
type Submission struct {
	Number int
	Status Status
}

// ParseSubmission extracts an item number and a status classification from a
// free-text participant message. itemCount bounds the valid number range.
// The bool result is false when the text has no digit run, the number is out
// of range, or no status keyword matches; such messages are dropped silently
// by the caller.
func ParseSubmission(text string, itemCount int) (Submission, bool) {
	lowered := strings.ToLower(text)

	match := digitRun.FindString(lowered)
	if match == "" {
		return Submission{}, false
	}
	num, err := strconv.Atoi(match)
	if err != nil || num < 1 || num > itemCount {
		return Submission{}, false
	}

	if containsAny(lowered, readyKeywords) {
		return Submission{Number: num, Status: StatusReady}, true
	}
	if containsAny(lowered, offKeywords) {
		return Submission{Number: num, Status: StatusOff}, true
	}
	return Submission{}, false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
