// Package notify is the single transient notification channel for
// user-visible outcomes. Every mutation result (success, denial,
// persistence failure, connection fallback) flows through here as a
// message + severity pair; nothing in the app raises blocking dialogs.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Severity classifies a notification for display.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
)

// Notification is one transient message.
type Notification struct {
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	At       time.Time `json:"at"`
}

// Notifier receives notifications as they are emitted.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Func adapts a plain function into a Notifier.
type Func func(message string, severity Severity)

func (f Func) Notify(message string, severity Severity) { f(message, severity) }

// Hub buffers recent notifications so the HTTP layer can drain them to the
// client, and mirrors each one to the log. It is safe for concurrent use;
// asynchronous persistence failures report through the same hub as
// synchronous denials.
type Hub struct {
	mu      sync.Mutex
	pending []Notification
	logger  *zap.Logger
	now     func() time.Time
}

// NewHub returns a Hub logging through the given logger.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{logger: logger, now: time.Now}
}

// Notify records one notification.
func (h *Hub) Notify(message string, severity Severity) {
	h.mu.Lock()
	h.pending = append(h.pending, Notification{
		Message:  message,
		Severity: severity,
		At:       h.now().UTC(),
	})
	h.mu.Unlock()

	if h.logger != nil {
		switch severity {
		case Error:
			h.logger.Warn("notification", zap.String("message", message))
		default:
			h.logger.Info("notification", zap.String("message", message))
		}
	}
}

// Drain returns all buffered notifications and clears the buffer. The
// client shows them as auto-dismissing toasts.
func (h *Hub) Drain() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.pending
	h.pending = nil
	return out
}
