package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"topchart/internal/logging"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultRetryCount = 2
	defaultRetryWait  = 500 * time.Millisecond
	defaultAccept     = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
)

// ErrEmptyBody is returned when the server answers 2xx without content.
var ErrEmptyBody = errors.New("empty response body")

// StatusError reports a non-2xx answer after retries were exhausted.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Fetcher retrieves the HTML of one page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Options configures a Client. Zero values fall back to package defaults.
type Options struct {
	UserAgent      string
	AcceptLanguage string
	Timeout        time.Duration
	RetryCount     int
	RetryWait      time.Duration
	Logger         *slog.Logger
}

// Client fetches pages over HTTP.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient builds a Client that presents itself like a desktop browser.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retries := opts.RetryCount
	if retries < 0 {
		retries = 0
	} else if retries == 0 {
		retries = defaultRetryCount
	}
	wait := opts.RetryWait
	if wait <= 0 {
		wait = defaultRetryWait
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(retries)
	client.SetRetryWaitTime(wait)
	client.SetRetryMaxWaitTime(4 * wait)
	client.AddRetryCondition(retryable)
	client.SetHeader("Accept", defaultAccept)
	if ua := strings.TrimSpace(opts.UserAgent); ua != "" {
		client.SetHeader("User-Agent", ua)
	}
	if lang := strings.TrimSpace(opts.AcceptLanguage); lang != "" {
		client.SetHeader("Accept-Language", lang)
	}

	c := &Client{http: client, logger: logger}
	client.OnBeforeRequest(c.onBeforeRequest)
	client.OnAfterResponse(c.onAfterResponse)
	return c
}

// Fetch returns the body of url. Transport failures, 429 and 5xx answers are
// retried; any other non-2xx status becomes a *StatusError.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if !res.IsSuccess() {
		return "", &StatusError{URL: url, StatusCode: res.StatusCode()}
	}
	body := res.String()
	if strings.TrimSpace(body) == "" {
		return "", fmt.Errorf("fetch %s: %w", url, ErrEmptyBody)
	}
	return body, nil
}

func retryable(res *resty.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	code := res.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func (c *Client) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	c.logger.Debug("request started",
		logging.String("method", req.Method),
		logging.String("url", req.URL),
		logging.Int("attempt", req.Attempt),
	)
	return nil
}

func (c *Client) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	c.logger.Debug("response received",
		logging.String("url", res.Request.URL),
		logging.Int("status", res.StatusCode()),
		logging.Int64("bytes", res.Size()),
		logging.Duration("elapsed", res.Time()),
	)
	return nil
}
