package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldError       = "error"
	FieldSender      = "sender"
	FieldWindow      = "window"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldMediaURL    = "media_url"
	FieldDuration    = "duration_ms"
	FieldStatusCode  = "status_code"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentHTTP       = "http"
	ComponentBot        = "bot"
	ComponentLedger     = "ledger"
	ComponentReport     = "report"
	ComponentAMQP       = "amqp"
	ComponentWorker     = "worker"
	ComponentTranscribe = "transcribe"
)
