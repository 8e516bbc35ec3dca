// Package notify is the side channel for user-facing notifications, the
// console equivalent of the web UI's toasts.
package notify

import (
	"io"

	"github.com/rs/zerolog"
)

// Notifier receives success and failure notices. Implementations must not
// affect the outcome of the operation that fired them.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

// Console renders notifications through a zerolog console writer.
type Console struct {
	log zerolog.Logger
}

// NewConsole writes notifications to w, typically stderr.
func NewConsole(w io.Writer) *Console {
	out := zerolog.ConsoleWriter{Out: w, PartsExclude: []string{zerolog.TimestampFieldName}}
	return &Console{log: zerolog.New(out)}
}

func (c *Console) Success(title, description string) {
	c.log.Info().Str("xabar", description).Msg(title)
}

func (c *Console) Error(title, description string) {
	c.log.Error().Str("xabar", description).Msg(title)
}

// Noop discards notifications.
type Noop struct{}

func (Noop) Success(title, description string) {}
func (Noop) Error(title, description string)   {}
