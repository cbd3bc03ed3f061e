// Package fetch retrieves HTTP resources and converts them into data URLs.
package fetch

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/getdataurl/go-dataurl/database"
	"github.com/getdataurl/go-dataurl/dataurl"
	"github.com/getdataurl/go-dataurl/metrics"
)

// EncodingPolicy selects how a fetched body is encoded into the data URL.
type EncodingPolicy int

const (
	// AlwaysBase64 base64-encodes every body regardless of media type.
	AlwaysBase64 EncodingPolicy = iota

	// PreserveTextWhenSafe renders text/* bodies through the percent-encoded
	// path instead.
	PreserveTextWhenSafe
)

// TransportError wraps any failure coming from the underlying HTTP client
// (malformed URL, DNS, TLS, connect, body read). No further classification.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Converter fetches a URL and maps the response into a dataurl.DataUrl. It
// holds no per-request state and is safe for concurrent use. Timeout, proxy
// and TLS policy belong to the injected client; the converter adds none of
// its own.
type Converter struct {
	cl *http.Client

	// Policy selects the payload encoding. Zero value is AlwaysBase64.
	Policy EncodingPolicy

	// Store, when set, records every fetch, including failed ones.
	Store database.Store
}

func NewConverter() *Converter {
	return &Converter{cl: &http.Client{}}
}

func NewConverterWithClient(cl *http.Client) *Converter {
	return &Converter{cl: cl}
}

// Fetch issues a GET request to url and converts the response. Client
// failures surface as *TransportError; cancellation comes from ctx.
func (c *Converter) Fetch(ctx context.Context, url string) (*dataurl.DataUrl, error) {
	fetchId := uuid.New()
	logger := NewLogger(fetchId.String())
	entry := &database.FetchEntry{
		Id:        fetchId,
		FetchedAt: time.Now().UTC(),
		Url:       url,
	}

	metrics.IncFetch()
	start := time.Now()
	res, err := c.doFetch(ctx, url, entry)
	duration := time.Since(start)
	metrics.ObserveFetchDuration(duration)
	entry.FetchDurationMs = duration.Milliseconds()

	if err != nil {
		metrics.IncFetchErr()
		entry.Error = err.Error()
		logger.logError("fetch failed: url=%s err=%s", url, err)
	} else {
		logger.log("fetch completed: url=%s mediaType=%s bytes=%d duration=%s", url, res.MediaType, len(res.Data), duration)
	}
	c.saveEntry(entry, logger)
	return res, err
}

func (c *Converter) doFetch(ctx context.Context, url string, entry *database.FetchEntry) (*dataurl.DataUrl, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	// non-2xx responses are converted like any other; the status only goes
	// into the fetch record
	entry.HttpResponseStatus = resp.StatusCode
	metrics.IncFetchResponseStatus(resp.StatusCode)

	res, err := c.ResponseToDataUrl(resp)
	if err != nil {
		return nil, err
	}
	entry.MediaType = res.MediaType
	entry.BodyBytes = len(res.Data)
	metrics.AddFetchBodyBytes(len(res.Data))
	return res, nil
}

// ResponseToDataUrl maps an already-received response into a DataUrl. The
// media type comes from the Content-Type header and falls back to
// application/octet-stream when the header is absent or unparseable; that
// fallback is silent, never an error. The body is read fully into memory.
func (c *Converter) ResponseToDataUrl(resp *http.Response) (*dataurl.DataUrl, error) {
	mediaType := dataurl.DefaultMediaType
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, params, err := mime.ParseMediaType(ct); err == nil {
			if formatted := mime.FormatMediaType(mt, params); formatted != "" {
				mediaType = formatted
			}
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	base64Encoded := true
	if c.Policy == PreserveTextWhenSafe && strings.HasPrefix(mediaType, "text/") {
		base64Encoded = false
	}
	return dataurl.New(mediaType, body, base64Encoded), nil
}

func (c *Converter) saveEntry(entry *database.FetchEntry, logger Logger) {
	if c.Store == nil {
		return
	}
	entry.InsertedAt = time.Now().UTC()
	if err := c.Store.SaveFetchEntry(entry); err != nil {
		logger.CreateChildLogger("store").logError("SaveFetchEntry failed: %s", err)
	}
}

// UrlToDataUrl fetches url with a default converter and returns the rendered
// data URL string.
func UrlToDataUrl(ctx context.Context, url string) (string, error) {
	converter := NewConverter()
	res, err := converter.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}
