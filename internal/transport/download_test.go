package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildpro/buildpro-go/internal/transport"
	"github.com/stretchr/testify/require"
)

func downloadServer(t *testing.T, disposition string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if disposition != "" {
			w.Header().Set("Content-Disposition", disposition)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.7 report"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownload_PrefersExtendedFilename(t *testing.T) {
	srv := downloadServer(t,
		`attachment; filename="plain.pdf"; filename*=UTF-8''monthly%20report%20%E2%82%AC.pdf`)
	client := newClient(t, srv.URL, &memTokens{access: "tok"})

	dl, err := client.Download(context.Background(), "/analytics/reports/export", transport.DownloadOptions{
		DefaultFilename: "report.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, "monthly report €.pdf", dl.Filename)
	require.Equal(t, "application/pdf", dl.ContentType)
	require.Equal(t, []byte("%PDF-1.7 report"), dl.Data)
}

func TestDownload_FallsBackToPlainFilename(t *testing.T) {
	srv := downloadServer(t, `attachment; filename="report-2026-08.pdf"`)
	client := newClient(t, srv.URL, &memTokens{access: "tok"})

	dl, err := client.Download(context.Background(), "/analytics/reports/export", transport.DownloadOptions{
		DefaultFilename: "report.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, "report-2026-08.pdf", dl.Filename)
}

func TestDownload_FallsBackToDefaultFilename(t *testing.T) {
	srv := downloadServer(t, "")
	client := newClient(t, srv.URL, &memTokens{access: "tok"})

	dl, err := client.Download(context.Background(), "/analytics/reports/export", transport.DownloadOptions{
		DefaultFilename: "report.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, "report.pdf", dl.Filename)
}

func TestDownload_DecodesBinaryErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success": false, "error": {"code": "FORBIDDEN", "message": "Export not permitted"}}`))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, &memTokens{access: "tok"})
	_, err := client.Download(context.Background(), "/analytics/reports/export", transport.DownloadOptions{})

	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Export not permitted", apiErr.Message)
}

func TestDownload_RawTextErrorFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, &memTokens{access: "tok"})
	_, err := client.Download(context.Background(), "/analytics/reports/export", transport.DownloadOptions{})

	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "upstream exploded", apiErr.Message)
}

func TestDownload_RefreshesExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			writeJSON(w, http.StatusOK,
				`{"success": true, "data": {"access_token": "fresh", "refresh_token": ""}}`)
		default:
			if r.Header.Get("Authorization") != "Bearer fresh" {
				writeJSON(w, http.StatusUnauthorized, authExpiredBody)
				return
			}
			w.Header().Set("Content-Disposition", `attachment; filename="ok.pdf"`)
			w.Write([]byte("data"))
		}
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, &memTokens{access: "stale", refresh: "refresh-1"})
	dl, err := client.Download(context.Background(), "/analytics/reports/export", transport.DownloadOptions{})
	require.NoError(t, err)
	require.Equal(t, "ok.pdf", dl.Filename)
}
