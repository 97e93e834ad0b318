package reminders

import "log"

// Notifier delivers a reminder to the user. Push/local-notification transport
// lives outside this process; the default implementation just logs.
type Notifier interface {
	Notify(kind, title, body string) error
}

// LogNotifier writes reminders to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(kind, title, body string) error {
	log.Printf("[NOTIFY] %s: %s - %s", kind, title, body)
	return nil
}
