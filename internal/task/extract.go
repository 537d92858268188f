package task

import "time"

// Labels holds the configurable section names the extractor recognizes.
type Labels struct {
	// Recurring names the section whose checked tasks are rescheduled
	// rather than removed.
	Recurring string
	// General names the ordinary task section. Headers with any other
	// name also start a general section.
	General string
}

// sectionKind tracks which section the scan is currently inside. Section
// membership is decided solely by the most recently seen header; there is
// no nesting.
type sectionKind int

const (
	sectionGeneral sectionKind = iota
	sectionRecurring
)

// ExtractResult is the outcome of one extraction pass.
type ExtractResult struct {
	// Keep is the new content of the task document.
	Keep []string
	// Completed holds the original checked task lines, trimmed, in
	// document order. Empty means the pass must be a no-op: neither the
	// task document nor the archive may be rewritten.
	Completed []string
}

// Extract splits the task document into lines to keep and newly completed
// task lines. Checked tasks in the recurring section are rewritten in place
// as unchecked tasks scheduled for the day after today; checked tasks
// anywhere else are removed. All other lines pass through unchanged.
func Extract(lines []string, today time.Time, pattern string, labels Labels) ExtractResult {
	tomorrow := FormatDate(today.AddDate(0, 0, 1), pattern)

	res := ExtractResult{Keep: make([]string, 0, len(lines))}
	section := sectionGeneral

	for _, raw := range lines {
		l := Classify(raw)
		switch l.Kind {
		case KindHeader:
			if l.Section == labels.Recurring {
				section = sectionRecurring
			} else {
				section = sectionGeneral
			}
			res.Keep = append(res.Keep, raw)

		case KindChecked:
			res.Completed = append(res.Completed, trimLine(raw))
			if section == sectionRecurring {
				res.Keep = append(res.Keep, l.Rewrite(false, tomorrow))
			}

		default:
			res.Keep = append(res.Keep, raw)
		}
	}

	return res
}
