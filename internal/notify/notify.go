// Package notify sends desktop notifications about sweep results.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier sends a desktop notification after a sweep archives tasks.
// The zero value is a disabled notifier.
type Notifier struct {
	Enabled bool
}

// Archived notifies about n newly archived tasks. Notification failures
// are returned so the caller can log them; they are never fatal.
func (n Notifier) Archived(count int) error {
	if !n.Enabled || count == 0 {
		return nil
	}
	body := fmt.Sprintf("Archived %d completed task", count)
	if count != 1 {
		body += "s"
	}
	if err := beeep.Notify("tasksweep", body, ""); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
