package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DownloadOptions configures a binary fetch.
type DownloadOptions struct {
	Method          string // defaults to GET
	Query           url.Values
	Body            any
	DefaultFilename string
}

// Download is a fetched binary payload with its server-suggested filename.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Download fetches a binary response, deriving the filename from the
// Content-Disposition header: the RFC 5987 extended form wins, then the
// plain form, then the caller's default. Expired tokens are recovered the
// same way as for JSON requests.
func (c *Client) Download(ctx context.Context, path string, opts DownloadOptions) (*Download, error) {
	used, _ := c.tokens.AccessToken()
	dl, err := c.downloadOnce(ctx, path, opts)
	if !authExpired(err) {
		return dl, err
	}

	if _, rerr := c.refresh.run(ctx, used); rerr != nil {
		return nil, ErrAuthExpired
	}

	dl, err = c.downloadOnce(ctx, path, opts)
	if authExpired(err) {
		return nil, ErrAuthExpired
	}
	return dl, err
}

func (c *Client) downloadOnce(ctx context.Context, path string, opts DownloadOptions) (*Download, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.refresh.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.refresh.timeout)
		defer cancel()
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + path
	if len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	var reader io.Reader = http.NoBody
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(req); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		// The error payload arrives as bytes; decode it as text and try the
		// JSON envelope before giving up on a readable message.
		return nil, decodeError(resp.StatusCode, data)
	}

	return &Download{
		Filename:    filenameFromDisposition(resp.Header.Get("Content-Disposition"), opts.DefaultFilename),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// filenameFromDisposition extracts a filename from a Content-Disposition
// header, preferring filename* (RFC 5987) over filename over the fallback.
func filenameFromDisposition(header, fallback string) string {
	if header == "" {
		return fallback
	}

	var plain, extended string
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if value, ok := strings.CutPrefix(part, "filename*="); ok {
			extended = decodeExtFilename(value)
		} else if value, ok := strings.CutPrefix(part, "filename="); ok {
			plain = strings.Trim(value, `"`)
		}
	}

	if extended != "" {
		return extended
	}
	if plain != "" {
		return plain
	}
	return fallback
}

// decodeExtFilename decodes the RFC 5987 charset''percent-encoded form.
func decodeExtFilename(value string) string {
	value = strings.Trim(value, `"`)
	charset, encoded, ok := strings.Cut(value, "''")
	if !ok || !strings.EqualFold(charset, "utf-8") {
		return ""
	}
	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		return ""
	}
	return decoded
}
