package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-mail/mail"
	"github.com/hotel-booking-api/internal/config"
	"github.com/hotel-booking-api/internal/domain"
)

// Policy decides whether an authenticated relay session outlives a send.
type Policy string

const (
	// PolicyPerSend dials, verifies and closes a session for every message.
	PolicyPerSend Policy = "per-send"
	// PolicyShared keeps one session open and redials after any failure.
	PolicyShared Policy = "shared"
)

const dialTimeout = 10 * time.Second

// Config is the mail account and relay the transport talks to.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Policy   Policy
}

// FromConfig maps the application config onto a transport Config.
func FromConfig(cfg config.Mail) Config {
	p := Policy(cfg.ConnPolicy)
	if p != PolicyShared {
		p = PolicyPerSend
	}
	return Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
		Policy:   p,
	}
}

// Message is a single HTML e-mail. Cc is optional.
type Message struct {
	To      string
	Cc      string
	Subject string
	HTML    string
}

// Mailer sends emails.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type dialer interface {
	Dial() (mail.SendCloser, error)
}

// Transport is the Mailer backed by an SMTP relay.
type Transport struct {
	cfg    Config
	dialer dialer
	cfgErr error

	mu     sync.Mutex
	shared mail.SendCloser
}

// NewTransport validates cfg once. A transport built without credentials is
// still usable as a value, but every send fails with domain.ErrMailerNotConfigured.
func NewTransport(cfg Config) *Transport {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = dialTimeout
	return newTransport(cfg, d)
}

func newTransport(cfg Config, d dialer) *Transport {
	t := &Transport{cfg: cfg, dialer: d}
	if cfg.Username == "" || cfg.Password == "" {
		t.cfgErr = domain.NewError(domain.ErrMailerNotConfigured, domain.MsgMailerDisabled)
	}
	if t.cfg.From == "" {
		t.cfg.From = cfg.Username
	}
	if t.cfg.Policy == "" {
		t.cfg.Policy = PolicyPerSend
	}
	return t
}

// Configured returns the configuration error, if any.
func (t *Transport) Configured() error { return t.cfgErr }

// Acquire opens and authenticates a relay session. The caller owns the
// returned session and must Close it.
func (t *Transport) Acquire(ctx context.Context) (mail.SendCloser, error) {
	if t.cfgErr != nil {
		return nil, t.cfgErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sc, err := t.dialer.Dial()
	if err != nil {
		slog.Warn("smtp verify failed", "host", t.cfg.Host, "port", t.cfg.Port, "diag", Diagnose(err), "err", err)
		return nil, fmt.Errorf("smtp dial %s:%d: %w: %w", t.cfg.Host, t.cfg.Port, domain.ErrMailerUnavailable, err)
	}
	return sc, nil
}

func (t *Transport) Send(ctx context.Context, msg Message) error {
	m := t.build(msg)
	if t.cfg.Policy == PolicyShared {
		return t.sendShared(ctx, m)
	}

	sc, err := t.Acquire(ctx)
	if err != nil {
		return err
	}
	sendErr := mail.Send(sc, m)
	if err := sc.Close(); err != nil {
		slog.Warn("smtp close failed", "err", err)
	}
	if sendErr != nil {
		return sendFailed(sendErr)
	}
	slog.Info("email sent", "to", msg.To, "cc", msg.Cc)
	return nil
}

// sendShared reuses the held session. A reused session that fails is
// dropped and the message retried once on a fresh one.
func (t *Transport) sendShared(ctx context.Context, m *mail.Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for attempt := 0; attempt < 2; attempt++ {
		reused := t.shared != nil
		if !reused {
			sc, err := t.Acquire(ctx)
			if err != nil {
				return err
			}
			t.shared = sc
		}
		err := mail.Send(t.shared, m)
		if err == nil {
			slog.Info("email sent", "to", m.GetHeader("To"), "cc", m.GetHeader("Cc"))
			return nil
		}
		t.dropShared()
		if !reused {
			return sendFailed(err)
		}
		slog.Warn("smtp session went stale, redialling", "err", err)
	}
	return fmt.Errorf("smtp send: retry exhausted: %w", domain.ErrMailerUnavailable)
}

// sendFailed marks a rejection inside an open session (RCPT, DATA) as a relay
// failure, the same as a failed dial.
func sendFailed(err error) error {
	slog.Warn("smtp send rejected", "diag", Diagnose(err), "err", err)
	return fmt.Errorf("smtp send: %w: %w", domain.ErrMailerUnavailable, err)
}

func (t *Transport) dropShared() {
	if t.shared == nil {
		return
	}
	_ = t.shared.Close()
	t.shared = nil
}

// Close releases the shared session, if one is held.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.shared == nil {
		return nil
	}
	err := t.shared.Close()
	t.shared = nil
	return err
}

func (t *Transport) build(msg Message) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", t.cfg.From)
	m.SetHeader("To", msg.To)
	if msg.Cc != "" {
		m.SetHeader("Cc", msg.Cc)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return m
}
