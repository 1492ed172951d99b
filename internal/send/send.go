// Package send routes a rendered document to an outbound channel. Every
// send persists the document into history first; dispatch happens after the
// write, so a failed channel never loses the document.
package send

import (
	"context"
	"errors"
	"fmt"

	"wrenchbill/internal/document"
	"wrenchbill/internal/history"
	"wrenchbill/internal/render"
	"wrenchbill/internal/validate"
)

// Channel is an outbound delivery mechanism.
type Channel string

const (
	ChannelMessage   Channel = "sms"
	ChannelMail      Channel = "email"
	ChannelClipboard Channel = "copy"
)

var (
	ErrNameRequired   = errors.New("customer name is required")
	ErrPhoneRequired  = errors.New("a valid phone number is required for text message")
	ErrEmailRequired  = errors.New("a valid email address is required for email")
	ErrUnknownChannel = errors.New("unknown send channel")
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Opener hands a URI to the platform to launch the matching application.
// Launching is fire-and-forget: an error means the launcher itself could
// not start, not that the message failed to arrive.
type Opener interface {
	Open(uri string) error
}

type Dispatcher struct {
	history   *history.Service
	clipboard Clipboard
	opener    Opener
}

func NewDispatcher(hist *history.Service, clipboard Clipboard, opener Opener) *Dispatcher {
	return &Dispatcher{history: hist, clipboard: clipboard, opener: opener}
}

// Result reports a completed (or attempted) send.
type Result struct {
	Saved      *history.SavedDocument
	NextNumber string
}

// Send validates the channel preconditions, persists the document, renders
// it and hands it off. Precondition failures reject before anything is
// written. A clipboard write failure is recoverable: the document is
// already in history by then, so the Result is returned alongside the
// error and the caller may retry the copy.
func (d *Dispatcher) Send(ctx context.Context, snap document.Snapshot, ch Channel) (*Result, error) {
	name := validate.Sanitize(snap.Customer.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	switch ch {
	case ChannelMessage:
		if snap.Customer.Phone == "" || !validate.Phone(snap.Customer.Phone) {
			return nil, ErrPhoneRequired
		}
	case ChannelMail:
		if snap.Customer.Email == "" || !validate.Email(snap.Customer.Email) {
			return nil, ErrEmailRequired
		}
	case ChannelClipboard:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, ch)
	}

	saved, next, err := d.history.Save(ctx, snap, history.SaveParams{Method: string(ch)})
	if err != nil {
		return nil, fmt.Errorf("saving to history: %w", err)
	}

	res := &Result{Saved: saved, NextNumber: next}
	text := string(render.Text(snap))

	switch ch {
	case ChannelMessage:
		if err := d.opener.Open(MessageURI(snap.Customer.Phone, text)); err != nil {
			return res, fmt.Errorf("opening messaging app: %w", err)
		}
	case ChannelMail:
		subject := "Invoice " + snap.Number
		if err := d.opener.Open(MailURI(snap.Customer.Email, subject, text)); err != nil {
			return res, fmt.Errorf("opening mail app: %w", err)
		}
	case ChannelClipboard:
		if err := d.clipboard.WriteAll(text); err != nil {
			return res, fmt.Errorf("writing to clipboard: %w", err)
		}
	}

	return res, nil
}
