package hubtel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Option func(*Options)

type Options struct {
	baseURL          string
	timeout          time.Duration
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	requestLogger    RequestLogger
	retryPolicy      func(*resty.Response, error) bool
	requestHeaders   map[string]string
}

func newClientOptions() *Options {
	return &Options{
		baseURL:          defaultBaseURL,
		retryCount:       0,
		retryWaitTime:    500 * time.Millisecond,
		retryMaxWaitTime: 3 * time.Second,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithBaseURL overrides the default gateway URL. Useful for test
// servers or a staging gateway.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimSpace(baseURL)
		if baseURL != "" {
			o.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout sets a per-request timeout. The default is no timeout
// beyond what the transport provides.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryCount enables automatic retries. The default is 0: no
// operation is retried unless the caller opts in.
func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= 100*time.Millisecond {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func (o *Options) Validate() error {
	if o.baseURL == "" {
		return errors.New("base URL must be set")
	}

	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}

	if o.retryCount > 100 {
		return errors.New("retryCount must not exceed 100")
	}

	if o.retryWaitTime < 100*time.Millisecond {
		return errors.New("retryWaitTime must be at least 100ms")
	}

	if o.retryWaitTime > time.Minute {
		return fmt.Errorf("retryWaitTime must not exceed %v", time.Minute)
	}

	if o.retryMaxWaitTime < 100*time.Millisecond {
		return errors.New("retryMaxWaitTime must be at least 100ms")
	}

	if o.retryMaxWaitTime > 5*time.Minute {
		return fmt.Errorf("retryMaxWaitTime must not exceed %v", 5*time.Minute)
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf(
			"retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)",
			o.retryMaxWaitTime, o.retryWaitTime,
		)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	return nil
}
