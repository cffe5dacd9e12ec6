package telegram

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// apiBaseURL is a var so tests can point the client at a local server.
var apiBaseURL = "https://api.telegram.org/bot"

// Uploads can be slow on CI runners, so the timeout is generous.
const uploadTimeout = 120 * time.Second

// Client represents a Telegram Bot API client
type Client struct {
	botToken   string
	chatID     string
	httpClient *http.Client
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string) (*Client, error) {
	if botToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if chatID == "" {
		return nil, fmt.Errorf("chat ID is required")
	}

	return &Client{
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: uploadTimeout,
		},
	}, nil
}

// Document is one sendDocument request: the file to upload, its HTML
// caption, and an optional forum topic to post into.
type Document struct {
	Path     string
	Caption  string
	ThreadID string
}

// UseThreadID reports whether a topic id should be attached to the
// payload. "0" and blank values mean "no topic".
func UseThreadID(threadID string) bool {
	trimmed := strings.TrimSpace(threadID)
	return trimmed != "" && trimmed != "0"
}

// SendDocument uploads the document to the configured chat as a single
// multipart POST. Success is strictly HTTP 200; anything else is
// returned as an error carrying the status code and response body.
func (c *Client) SendDocument(doc Document) error {
	if doc.Path == "" {
		return fmt.Errorf("document path is required")
	}

	f, err := os.Open(doc.Path)
	if err != nil {
		return fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"chat_id":    c.chatID,
		"caption":    doc.Caption,
		"parse_mode": "HTML",
	}
	if UseThreadID(doc.ThreadID) {
		fields["message_thread_id"] = strings.TrimSpace(doc.ThreadID)
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("writing form field %s: %w", name, err)
		}
	}

	part, err := w.CreateFormFile("document", filepath.Base(doc.Path))
	if err != nil {
		return fmt.Errorf("creating document part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing form: %w", err)
	}

	url := fmt.Sprintf("%s%s/sendDocument", apiBaseURL, c.botToken)

	req, err := http.NewRequest("POST", url, &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}

// APIError is a non-200 reply from the Bot API, kept distinct from
// transport failures so callers can report the two differently.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error (status %d): %s", e.StatusCode, e.Body)
}

// classifyTransportError maps a failed round trip onto a closed set of
// failure kinds so callers and tests can tell them apart without a real
// network.
func classifyTransportError(err error) error {
	var dnsErr *net.DNSError
	var certErr *tls.CertificateVerificationError
	var unknownAuthErr x509.UnknownAuthorityError
	var hostErr x509.HostnameError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("request timed out: %w", err)
	case errors.As(err, &dnsErr):
		return fmt.Errorf("DNS lookup failed for %s: %w", dnsErr.Name, err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("connection refused: %w", err)
	case errors.As(err, &certErr), errors.As(err, &unknownAuthErr), errors.As(err, &hostErr):
		return fmt.Errorf("TLS verification failed: %w", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("request timed out: %w", err)
	}

	return fmt.Errorf("sending request: %w", err)
}
