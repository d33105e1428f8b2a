package whatsappgo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo"
)

func newTestClient(serverURL string) *whatsappgo.Client {
	return whatsappgo.NewClient(&whatsappgo.ClientOpts{
		Config: &whatsappgo.Config{
			AccessToken:       "test-token",
			PhoneNumberID:     "111",
			BusinessAccountID: "222",
			BaseURL:           serverURL,
		},
	}, zerolog.Nop())
}

func TestGetMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v19.0/123", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"123","url":"https://x/y","mime_type":"image/png","sha256":"abc","file_size":1024}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	envelope, err := cli.GetMedia(context.Background(), "123")
	require.NoError(t, err)

	require.True(t, envelope.Ok())
	assert.Equal(t, "123", envelope.Success.ID)
	assert.Equal(t, "https://x/y", envelope.Success.URL)
	assert.Equal(t, "image/png", envelope.Success.MimeType)
	assert.EqualValues(t, 1024, envelope.Success.FileSize)
}

func TestGetMediaProviderError(t *testing.T) {
	body := `{"error":{"message":"Unsupported get request","code":100}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	envelope, err := cli.GetMedia(context.Background(), "nope")
	require.NoError(t, err)

	require.False(t, envelope.Ok())
	assert.Equal(t, http.StatusBadRequest, envelope.Failure.Status)
	assert.Equal(t, body, string(envelope.Failure.Body))
}

func TestUploadMedia(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "photo.png")
	content := []byte("fake png bytes")
	require.NoError(t, os.WriteFile(filePath, content, 0o644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v19.0/999/media", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whatsapp", r.FormValue("messaging_product"))
		assert.Equal(t, "image/png", r.FormValue("type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"456"}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	envelope, err := cli.UploadMedia(context.Background(), "999", filePath, "image/png")
	require.NoError(t, err)

	require.True(t, envelope.Ok())
	assert.Equal(t, "456", envelope.Success.ID)
}

func TestUploadMediaMissingFileNeverHitsNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	missingPath := filepath.Join("tmp", "missing.png")
	envelope, err := cli.UploadMedia(context.Background(), "999", missingPath, "image/png")

	require.Nil(t, envelope)
	var fileErr *whatsappgo.FileNotFoundError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, missingPath, fileErr.Path)
	assert.Zero(t, requests, "upload with a missing file must not call the transport")
}

func TestUploadMediaDirectoryIsNotAFile(t *testing.T) {
	cli := newTestClient("http://localhost:0")
	_, err := cli.UploadMedia(context.Background(), "999", t.TempDir(), "image/png")

	var fileErr *whatsappgo.FileNotFoundError
	require.ErrorAs(t, err, &fileErr)
}

func TestDownloadMediaWritesFile(t *testing.T) {
	content := []byte{0x89, 0x50, 0x4e, 0x47, 0x01, 0x02}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		_, _ = w.Write(content)
	}))
	defer server.Close()

	filePath := filepath.Join(t.TempDir(), "out.png")
	cli := newTestClient(server.URL)
	envelope, err := cli.DownloadMedia(context.Background(), server.URL, filePath, "image/png")
	require.NoError(t, err)

	require.True(t, envelope.Ok())
	assert.True(t, envelope.Success.Success)
	assert.Equal(t, http.StatusOK, envelope.Success.Status)
	assert.Equal(t, content, envelope.Success.Body)

	written, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, content, written)
}

func TestDownloadMediaNon200LeavesNoFile(t *testing.T) {
	body := `{"error":"not found"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	filePath := filepath.Join(t.TempDir(), "out.png")
	cli := newTestClient(server.URL)
	envelope, err := cli.DownloadMedia(context.Background(), server.URL, filePath, "image/png")
	require.NoError(t, err)

	require.False(t, envelope.Ok())
	assert.Equal(t, http.StatusNotFound, envelope.Failure.Status)
	assert.Equal(t, body, string(envelope.Failure.Body))

	_, statErr := os.Stat(filePath)
	assert.True(t, os.IsNotExist(statErr))
}

// an undocumented media type must not be rejected locally
func TestDownloadMediaAcceptsUndocumentedType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-custom", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte("payload"))
	}))
	defer server.Close()

	filePath := filepath.Join(t.TempDir(), "out.bin")
	cli := newTestClient(server.URL)
	envelope, err := cli.DownloadMedia(context.Background(), server.URL, filePath, "application/x-custom")
	require.NoError(t, err)
	require.True(t, envelope.Ok())
}

func TestDeleteMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v19.0/123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	envelope, err := cli.DeleteMedia(context.Background(), "123")
	require.NoError(t, err)

	require.True(t, envelope.Ok())
	assert.True(t, envelope.Success.Success)
}
