package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"retail-ops-core/internal/domain/idempotency"
	"retail-ops-core/internal/handler/httperr"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/gateway"

	"github.com/gin-gonic/gin"
)

const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

const defaultContentType = "application/json; charset=utf-8"

var errRequestTooLarge = errs.New("request body too large")

type IdempotencyMiddleware struct {
	gw              gateway.Gateway
	retryAfter      string
	maxCapturedBody int64
	maxKeyLength    int
}

func NewIdempotencyMiddleware(gw gateway.Gateway, cfg config.IdempotencyConfig) *IdempotencyMiddleware {
	retry := cfg.RetryAfterSecs
	if retry <= 0 {
		retry = 1
	}
	maxBody := cfg.MaxCapturedBody
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	return &IdempotencyMiddleware{
		gw:              gw,
		retryAfter:      strconv.Itoa(retry),
		maxCapturedBody: maxBody,
		maxKeyLength:    cfg.MaxKeyLength,
	}
}

// Handler runs the rest of the chain at most once per Idempotency-Key and route. The downstream
// response is buffered, handed to the gateway, and written back from the gateway's
// result, so first executions and replays take the same path to the client.
func (m *IdempotencyMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey))
		if key == "" {
			httperr.Abort(c, errs.Wrap(errs.ErrIdempotencyKeyRequired, "missing "+HeaderIdempotencyKey))
			return
		}
		if m.maxKeyLength > 0 {
			if err := idempotency.ValidateKey(key, m.maxKeyLength); err != nil {
				httperr.Abort(c, errs.Mark(err, errs.ErrIdempotencyKeyInvalid))
				return
			}
		}

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, m.maxCapturedBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, errRequestTooLarge, "Request body too large", nil)
				return
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read request body", nil)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		fingerprint := idempotency.Fingerprint(c.Request.Method, c.Request.URL.Path, body)
		original := c.Writer

		scoped := idempotency.ScopedKey(routeScope(c), key)

		res, err := m.gw.Execute(c.Request.Context(), scoped, fingerprint, func(ctx context.Context) (idempotency.StoredResponse, error) {
			capture := &captureWriter{ResponseWriter: original}
			c.Writer = capture
			c.Request = c.Request.WithContext(ctx)
			defer func() { c.Writer = original }()

			c.Next()

			return idempotency.StoredResponse{
				StatusCode: capture.Status(),
				Headers:    storableHeaders(original.Header()),
				Body:       capture.body.Bytes(),
			}, nil
		})
		if err != nil {
			if errs.Is(err, errs.ErrIdempotencyInProgress) {
				c.Header("Retry-After", m.retryAfter)
			}
			httperr.Abort(c, err)
			return
		}

		writeStored(c, res)
		c.Abort()
	}
}

// routeScope is the matched route template, so /products/A/sync and /products/B/sync
// share a scope and the fingerprint tells them apart.
func routeScope(c *gin.Context) string {
	scope := c.Request.Method + ":" + c.FullPath()
	if len(scope) > idempotency.MaxScopeLength {
		scope = scope[:idempotency.MaxScopeLength]
	}
	return scope
}

func writeStored(c *gin.Context, res *gateway.Result) {
	h := c.Writer.Header()
	for k, vs := range res.Response.Headers {
		h[k] = append([]string(nil), vs...)
	}
	if res.Replayed {
		h.Set(HeaderIdempotentReplayed, "true")
	}
	contentType := h.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}
	c.Data(res.Response.StatusCode, contentType, res.Response.Body)
}

// storableHeaders drops headers that belong to the transport or to this particular
// request rather than to the operation's outcome.
func storableHeaders(h http.Header) http.Header {
	out := make(http.Header)
	for k, vs := range h {
		canonical := http.CanonicalHeaderKey(k)
		if strings.HasPrefix(canonical, "Access-Control-") {
			continue
		}
		switch canonical {
		case headerRequestID, "Vary", "Content-Length", "Date", "Retry-After", HeaderIdempotentReplayed:
			continue
		}
		out[canonical] = append([]string(nil), vs...)
	}
	return out
}

// captureWriter buffers the downstream response instead of sending it.
type captureWriter struct {
	gin.ResponseWriter
	status  int
	written bool
	body    bytes.Buffer
}

func (w *captureWriter) WriteHeader(code int) {
	if code > 0 && !w.written {
		w.status = code
	}
}

func (w *captureWriter) WriteHeaderNow() {
	w.written = true
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.WriteHeaderNow()
	return w.body.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.WriteHeaderNow()
	return w.body.WriteString(s)
}

func (w *captureWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *captureWriter) Size() int {
	if !w.written {
		return -1
	}
	return w.body.Len()
}

func (w *captureWriter) Written() bool {
	return w.written
}
