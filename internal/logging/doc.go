// Package logging builds the zerolog loggers used across licensedesk and
// carries them, together with a per-invocation trace ID, through context.
package logging
