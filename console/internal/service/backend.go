package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Astemirdum/room-booking/console/config"
	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/Astemirdum/room-booking/pkg/circuit_breaker"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Backend is the JSON transport of a reservation API client. Each client
// owns its Backend so its circuit breaker only sees that client's calls.
type Backend struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	cb      circuit_breaker.CircuitBreaker
}

func NewBackend(log *zap.Logger, cfg config.ReservationAPI) *Backend {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = time.Minute
	}
	return &Backend{
		log:     log,
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.URL, "/"),
		cb:      circuit_breaker.New(100, time.Second, 0.2, 2),
	}
}

func (b *Backend) CB() circuit_breaker.CircuitBreaker {
	return b.cb
}

func (b *Backend) URL(path string) string {
	return b.baseURL + path
}

var errServerSide = errors.New("server side error")

// Do issues exactly one request. A nil body sends no payload; otherwise body is JSON encoded.
// Only transport failures are returned as errors, status handling is left to the caller.
func (b *Backend) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var payload io.Reader = http.NoBody
	if body != nil {
		buf := bytes.NewBuffer(nil)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, errors.Wrap(err, "encode body")
		}
		payload = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, b.URL(path), payload)
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	var resp *http.Response
	err = b.cb.Call(func() error {
		var doErr error
		resp, doErr = b.client.Do(req)
		if doErr != nil {
			// the caller gave up, not the reservation API
			if ctx.Err() != nil {
				return circuit_breaker.Ignore(doErr)
			}
			return doErr
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return errServerSide
		}
		return nil
	})
	if err != nil && !errors.Is(err, errServerSide) {
		if ctx.Err() != nil {
			b.log.Debug("backend call cancelled", zap.String("method", method), zap.String("path", path), zap.Error(err))
		} else {
			b.log.Warn("backend call", zap.String("method", method), zap.String("path", path), zap.Error(err))
		}
		return nil, errors.Wrapf(errs.ErrNetwork, "%s %s: %v", method, path, err)
	}
	return resp, nil
}

// Success reports a 2xx status.
func Success(resp *http.Response) bool {
	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

// Drain discards the rest of the body so the connection can be reused.
func Drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// DecodeRaw returns the body verbatim, validating that it is JSON. An empty body reads as {}.
func DecodeRaw(resp *http.Response) (json.RawMessage, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errs.ErrNetwork, err.Error())
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(data) {
		return nil, errors.New("response is not valid json")
	}
	return json.RawMessage(data), nil
}
