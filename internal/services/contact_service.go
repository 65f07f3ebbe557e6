package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"vitrine.dev/internal/models"
)

// MaxMessageLength bounds the message field, in characters
const MaxMessageLength = 5000

var (
	// ErrInvalidContact is returned when required fields are missing or too long
	ErrInvalidContact = errors.New("invalid contact submission")
	// ErrRelayUnconfigured is returned when no relay endpoint is set
	ErrRelayUnconfigured = errors.New("contact relay endpoint not configured")
	// ErrRelayFailed covers both non-2xx responses and transport errors
	ErrRelayFailed = errors.New("contact relay failed")
)

// ContactSender delivers a contact submission
type ContactSender interface {
	Send(ctx context.Context, sub *models.ContactSubmission) error
}

// ContactService validates contact form posts and relays them to a form endpoint
type ContactService struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewContactService creates a ContactService posting to endpoint
func NewContactService(endpoint string, timeout time.Duration) *ContactService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ContactService{
		endpoint: strings.TrimSpace(endpoint),
		client:   &http.Client{Timeout: timeout},
		logger:   slog.Default(),
	}
}

// WithClient swaps the HTTP client
func (s *ContactService) WithClient(c *http.Client) *ContactService {
	s.client = c
	return s
}

// WithLogger sets the logger
func (s *ContactService) WithLogger(logger *slog.Logger) *ContactService {
	s.logger = logger
	return s
}

// NewSubmission validates raw form fields and assigns a submission id
func NewSubmission(fields url.Values) (*models.ContactSubmission, error) {
	clean := url.Values{}
	for k, vs := range fields {
		for _, v := range vs {
			clean.Add(k, strings.TrimSpace(v))
		}
	}

	sub := &models.ContactSubmission{ID: uuid.NewString(), Fields: clean}
	if sub.Email() == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidContact)
	}
	if !strings.Contains(sub.Email(), "@") {
		return nil, fmt.Errorf("%w: email is malformed", ErrInvalidContact)
	}
	if sub.Message() == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidContact)
	}
	if utf8.RuneCountInString(sub.Message()) > MaxMessageLength {
		return nil, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidContact, MaxMessageLength)
	}
	return sub, nil
}

// Send posts the submission form-encoded and succeeds only on a 2xx response.
// There is no retry.
func (s *ContactService) Send(ctx context.Context, sub *models.ContactSubmission) error {
	if s.endpoint == "" {
		return ErrRelayUnconfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(sub.Fields.Encode()))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrRelayFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("contact relay unreachable", "submission_id", sub.ID, "error", err)
		return fmt.Errorf("%w: %v", ErrRelayFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("contact relay rejected submission",
			"submission_id", sub.ID,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("%w: status %d", ErrRelayFailed, resp.StatusCode)
	}

	s.logger.Info("contact submission relayed",
		"submission_id", sub.ID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
