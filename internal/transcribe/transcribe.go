// Package transcribe turns voice-note audio into text for the message
// pipeline. Failures here are soft: the caller treats missing text as an
// unrecognized message, never as a fatal error.
package transcribe

import "context"

// Transcriber converts audio bytes into text. Implementations must honor
// the context deadline supplied by the caller.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}
