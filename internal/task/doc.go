// Package task implements the task-line transformation engine.
//
// The task file is plain markdown divided into sections by `### ` headers.
// Two section labels are recognized (configurable): the recurring section,
// whose checked items are rescheduled to the next day instead of removed,
// and the general section. Any other header starts a section treated the
// same as the general one.
//
// A task line looks like:
//
//	- [ ] Water the plants (2024-01-02)
//	* [x] Ship the release
//
// The list marker is `-` or `*`, the checkbox is `[ ]`, `[x]` or `[X]`, and
// the trailing parenthesized group, when present, is a removable date
// annotation. Everything between the checkbox and the annotation is the
// task text.
//
// The archive file is organized into date sections, each headed by a
// `### <date>` line. Merge inserts completed task lines under the right
// date section, creating it at the end of the document when absent.
//
// All functions in this package are pure: they take lines in and return
// lines out, never touching the filesystem.
package task
