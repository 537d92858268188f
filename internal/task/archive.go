package task

import "strings"

// Merge inserts completed task lines under the archive section headed by
// dateHeader. If the section exists, the lines are appended at its end,
// just before the next header (or at end of document). If it does not, a
// new section is appended to the document, separated from existing content
// by one blank line. Content outside the target section is preserved
// verbatim and in order, including any duplicate date headers already
// present: only the first occurrence of dateHeader is treated as the
// target.
//
// Merge is not idempotent. Merging the same completed lines twice
// duplicates them; the caller runs at most one merge per extraction pass.
func Merge(archive, completed []string, dateHeader string) []string {
	target := strings.TrimSpace(dateHeader)

	out := make([]string, 0, len(archive)+len(completed)+2)
	found := false
	inside := false

	for _, raw := range archive {
		if !found && strings.TrimSpace(raw) == target {
			found = true
			inside = true
			out = append(out, raw)
			continue
		}
		if inside && Classify(raw).Kind == KindHeader {
			out = append(out, completed...)
			inside = false
		}
		out = append(out, raw)
	}

	switch {
	case inside:
		out = append(out, completed...)
	case !found:
		out = trimTrailingBlank(out)
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, dateHeader)
		out = append(out, completed...)
	}

	return trimTrailingBlank(out)
}

// trimTrailingBlank drops blank lines from the end of the document.
func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

// trimLine is the normalization applied to completed lines before they are
// recorded in the archive.
func trimLine(s string) string {
	return strings.TrimSpace(s)
}

// SplitLines splits full document text into lines, treating both LF and
// CRLF endings as line breaks.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// JoinLines renders lines back into full document text with a trailing
// newline. A trailing empty line already accounts for it, so no second
// newline is added.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	s := strings.Join(lines, "\n")
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}
