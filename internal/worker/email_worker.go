package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"gastropos/internal/infra"

	"github.com/rs/zerolog/log"
)

type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// Sender delivers one message. Implemented by infra.Mailer.
type Sender interface {
	SendComprobante(to, subject, body, pdfPath string) error
}

// EmailWorker sends invoice e-mails through a circuit breaker so a dead
// relay fails fast instead of tying up every worker.
type EmailWorker struct {
	sender Sender
	cb     *infra.CircuitBreaker
}

func NewEmailWorker(sender Sender, cb *infra.CircuitBreaker) *EmailWorker {
	return &EmailWorker{sender: sender, cb: cb}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Permanent(fmt.Errorf("email_worker: invalid payload: %w", err))
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email, skipping")
		return nil
	}
	if w.sender == nil {
		log.Warn().Str("to", payload.ToEmail).Msg("email_worker: smtp not configured, skipping")
		return nil
	}

	send := func() error {
		return w.sender.SendComprobante(payload.ToEmail, payload.Subject, payload.Body, payload.PDFPath)
	}
	var err error
	if w.cb != nil {
		err = w.cb.Execute(send)
	} else {
		err = send()
	}
	if err != nil {
		return fmt.Errorf("email_worker: send to %s: %w", payload.ToEmail, err)
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: invoice sent")
	return nil
}
