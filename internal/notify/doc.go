package notify

// Package notify manages transient, self-expiring user notifications (toasts).
