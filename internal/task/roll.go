package task

import "time"

// RollCompletedToday scans the recurring section for checked tasks whose
// annotation equals today's date and flips them back to unchecked, keeping
// the same date. This handles a recurring task whose rollover day has
// arrived while it was still checked from the prior cycle. The returned
// bool reports whether anything changed so the caller can skip the write.
func RollCompletedToday(lines []string, today time.Time, pattern string, labels Labels) ([]string, bool) {
	formatted := FormatDate(today, pattern)

	out := make([]string, 0, len(lines))
	section := sectionGeneral
	changed := false

	for _, raw := range lines {
		l := Classify(raw)
		switch l.Kind {
		case KindHeader:
			if l.Section == labels.Recurring {
				section = sectionRecurring
			} else {
				section = sectionGeneral
			}
			out = append(out, raw)

		case KindChecked:
			if section == sectionRecurring && l.Annotation == formatted {
				out = append(out, l.Rewrite(false, formatted))
				changed = true
			} else {
				out = append(out, raw)
			}

		default:
			out = append(out, raw)
		}
	}

	return out, changed
}
