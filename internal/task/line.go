package task

import (
	"regexp"
	"strings"
)

// HeaderMarker introduces a section header line.
const HeaderMarker = "### "

// Kind classifies a single line of a task or archive document.
type Kind int

const (
	// KindPlain is any line that is neither a header nor a checkbox task.
	KindPlain Kind = iota
	// KindHeader is a section header line (`### <name>`).
	KindHeader
	// KindChecked is a completed checkbox task (`- [x] ...`).
	KindChecked
	// KindUnchecked is a pending checkbox task (`- [ ] ...`).
	KindUnchecked
)

var (
	checkboxPattern   = regexp.MustCompile(`^(\s*)([-*])\s+\[([ xX])\]\s*(.*)$`)
	annotationPattern = regexp.MustCompile(`\(([^()]*)\)$`)
)

// Line is the parsed form of a single document line.
type Line struct {
	Kind Kind
	Raw  string

	// Section is the header name; set only when Kind is KindHeader.
	Section string

	// Task fields; set only when Kind is KindChecked or KindUnchecked.
	Indent     string // leading whitespace, preserved on rewrite
	Bullet     string // "-" or "*"
	Text       string // task text with the trailing annotation stripped
	Annotation string // contents of the trailing (...) group, "" if absent
}

// Classify parses a single line. It is a pure function: the same input
// always yields the same Line and nothing is mutated.
func Classify(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, HeaderMarker) {
		return Line{
			Kind:    KindHeader,
			Raw:     raw,
			Section: strings.TrimSpace(strings.TrimPrefix(trimmed, HeaderMarker)),
		}
	}

	m := checkboxPattern.FindStringSubmatch(raw)
	if m == nil {
		return Line{Kind: KindPlain, Raw: raw}
	}

	kind := KindUnchecked
	if m[3] == "x" || m[3] == "X" {
		kind = KindChecked
	}

	text, annotation := splitAnnotation(m[4])
	return Line{
		Kind:       kind,
		Raw:        raw,
		Indent:     m[1],
		Bullet:     m[2],
		Text:       text,
		Annotation: annotation,
	}
}

// splitAnnotation separates the trailing parenthesized annotation from the
// task text. A body without a well-formed trailing group degrades to the
// whole body as text with an empty annotation.
func splitAnnotation(body string) (text, annotation string) {
	body = strings.TrimSpace(body)
	m := annotationPattern.FindStringSubmatchIndex(body)
	if m == nil {
		return body, ""
	}
	return strings.TrimSpace(body[:m[0]]), body[m[2]:m[3]]
}

// Rewrite renders the line as a checkbox task with the given checked state
// and annotation, preserving the original indent and bullet. The previous
// annotation, if any, is replaced atomically.
func (l Line) Rewrite(checked bool, annotation string) string {
	box := " "
	if checked {
		box = "x"
	}
	s := l.Indent + l.Bullet + " [" + box + "] " + l.Text
	if annotation != "" {
		s += " (" + annotation + ")"
	}
	return s
}
