package whatsappgo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/payload"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/types"
)

// MakeRequest is the raw call-and-read primitive every operation funnels through.
// Network-level failures surface unchanged; the caller classifies everything else.
func (c *Client) MakeRequest(ctx context.Context, method string, requestURL string, headers http.Header, reqPayload []byte) (*http.Response, []byte, error) {
	var body io.Reader
	if reqPayload != nil {
		body = bytes.NewReader(reqPayload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, nil, err
	}

	if headers != nil {
		req.Header = headers
	}
	req.Header.Set("x-request-id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}

	c.Logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Int("status_code", resp.StatusCode).
		Str("request_id", req.Header.Get("x-request-id")).
		Msg("Performed request")

	return resp, respBody, nil
}

// StreamGet fetches a byte stream, typically a media URL handed out by the provider.
// The response body is returned as-is without any classification.
func (c *Client) StreamGet(ctx context.Context, requestURL string, headers http.Header) (*http.Response, []byte, error) {
	return c.MakeRequest(ctx, http.MethodGet, requestURL, headers, nil)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// encodeMediaMultipart builds the provider's upload form: messaging_product, type
// and the file part tagged with its declared content type. The file handle is
// closed on every path.
func encodeMediaMultipart(filePath string, mediaType string) ([]byte, types.ContentType, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, types.ContentTypeNone, err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err = w.WriteField(payload.FieldMessagingProduct, payload.MessagingProduct); err != nil {
		return nil, types.ContentTypeNone, err
	}
	if err = w.WriteField(payload.FieldType, mediaType); err != nil {
		return nil, types.ContentTypeNone, err
	}

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, payload.FieldFile, quoteEscaper.Replace(filepath.Base(filePath))))
	partHeader.Set("Content-Type", mediaType)

	part, err := w.CreatePart(partHeader)
	if err != nil {
		return nil, types.ContentTypeNone, err
	}
	if _, err = io.Copy(part, f); err != nil {
		return nil, types.ContentTypeNone, err
	}

	if err = w.Close(); err != nil {
		return nil, types.ContentTypeNone, err
	}

	return buf.Bytes(), types.ContentType(w.FormDataContentType()), nil
}
