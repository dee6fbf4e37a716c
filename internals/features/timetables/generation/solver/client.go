package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"timetable_backend/internals/features/timetables/generation/model"
	helper "timetable_backend/internals/helpers"
)

const (
	DefaultTimeout = 20 * time.Second

	// potongan body respons yang ikut di detail SchedulerRejected
	maxDetailBytes = 512
	maxBodyBytes   = 32 << 20
)

// Client memanggil solver eksternal. Tidak ada retry: kegagalan langsung dilaporkan.
type Client struct {
	baseURL string
	client  *http.Client
}

type ClientOption func(*Client)

// WithTimeout: batas keras satu panggilan solver. Nilai <= 0 kembali ke DefaultTimeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		} else {
			c.client.Timeout = DefaultTimeout
		}
	}
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// Generate mengirim payload ke {baseURL}/generate dan mengembalikan body respons mentah.
// Transport error / timeout → SchedulerUnavailable; status non-2xx → SchedulerRejected.
func (c *Client) Generate(ctx context.Context, payload model.SchedulingPayload) ([]byte, error) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return nil, helper.InternalError("encode scheduling payload")
	}

	url := c.baseURL + "/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, helper.UpstreamError(helper.CodeSchedulerUnavailable, "invalid scheduler url")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if rid, ok := ctx.Value(helper.RequestIDKey).(string); ok && rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[GENERATE] scheduler unreachable after %s: %v", time.Since(start), err)
		detail := "scheduler is unreachable"
		if isTimeout(err) {
			detail = fmt.Sprintf("scheduler did not respond within %s", c.client.Timeout)
		}
		return nil, helper.UpstreamError(helper.CodeSchedulerUnavailable, detail)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Printf("[GENERATE] scheduler body read failed: %v", err)
		return nil, helper.UpstreamError(helper.CodeSchedulerUnavailable, "scheduler response was interrupted")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := strings.TrimSpace(string(data))
		if len(snippet) > maxDetailBytes {
			snippet = snippet[:maxDetailBytes]
		}
		log.Printf("[GENERATE] scheduler rejected status=%d took=%s", resp.StatusCode, time.Since(start))
		return nil, helper.UpstreamError(helper.CodeSchedulerRejected,
			fmt.Sprintf("scheduler returned HTTP %d: %s", resp.StatusCode, snippet)).
			WithMeta("status", resp.StatusCode)
	}

	log.Printf("[GENERATE] scheduler ok status=%d took=%s bytes=%d", resp.StatusCode, time.Since(start), len(data))
	return data, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
