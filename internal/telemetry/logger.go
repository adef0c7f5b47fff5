package telemetry

import "github.com/posthog/posthog-go"

var _ posthog.Logger = logger{}

// logger discards everything PostHog logs. Telemetry failures must never
// reach the user, and writing to stderr would corrupt the TUI.
type logger struct{}

func (logger) Debugf(format string, args ...any) {}
func (logger) Logf(format string, args ...any)   {}
func (logger) Warnf(format string, args ...any)  {}
func (logger) Errorf(format string, args ...any) {}
