package http

import (
	"context"
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"

	"gastobot/internal/transcribe"
)

// twimlResponse is the XML envelope Twilio expects back from a webhook.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// handleWebhook receives a Twilio-style inbound message. Text goes straight
// to the interpreter; voice notes are transcribed first when a transcriber
// is configured. Transcription failures degrade to empty text, so the
// sender always gets a reply.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	sender := strings.TrimSpace(r.FormValue("From"))
	if sender == "" {
		http.Error(w, "missing From field", http.StatusBadRequest)
		return
	}

	body := r.FormValue("Body")
	if strings.TrimSpace(body) == "" {
		body = s.resolveMediaText(r)
	}

	reply := s.interpreter.HandleMessage(r.Context(), sender, body)
	writeTwiML(w, reply)
}

// resolveMediaText fetches and transcribes the first media attachment.
// Any failure yields empty text.
func (s *Server) resolveMediaText(r *http.Request) string {
	if s.transcriber == nil {
		return ""
	}

	numMedia, err := strconv.Atoi(r.FormValue("NumMedia"))
	if err != nil || numMedia < 1 {
		return ""
	}

	mediaURL := r.FormValue("MediaUrl0")
	if mediaURL == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.transcribeTimeout)
	defer cancel()

	audio, mimeType, err := transcribe.FetchMedia(ctx, s.mediaClient, mediaURL)
	if err != nil {
		return ""
	}

	text, err := s.transcriber.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return ""
	}
	return text
}

func writeTwiML(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	xml.NewEncoder(w).Encode(twimlResponse{Message: message})
}
