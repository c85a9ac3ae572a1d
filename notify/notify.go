// Package notify provides assignment notifiers.
//
// Notifiers inform an employee about a new seat assignment after it has
// been committed. The package includes:
//
//   - Email: Rendered email delivery through a pluggable send function
//   - SMS: Rendered text-message delivery through a pluggable send function
//   - Recorder: In-memory notification log (tests)
//
// Custom notifiers can be implemented by satisfying the types.Notifier
// interface.
package notify

import "context"

// SendFunc delivers one rendered message to one recipient address. Email
// and SMS notifiers accept a SendFunc so the actual transport (SMTP relay,
// SMS gateway) stays outside the library.
type SendFunc func(ctx context.Context, recipient, message string) error
