package core

import "time"

// NotifyKind qualifies a user-visible notification.
type NotifyKind string

const (
	NotifyInfo    NotifyKind = "info"
	NotifySuccess NotifyKind = "success"
	NotifyWarning NotifyKind = "warning"
	NotifyError   NotifyKind = "error"
)

const DefaultNotifyDuration = 5 * time.Second

// Notifier is any service that can surface a transient message to the user.
// It replaces the web client's toast container; implementations must be safe
// for concurrent use (poll ticks notify from their own goroutine).
type Notifier interface {
	Notify(message string, kind NotifyKind, duration time.Duration)
}
