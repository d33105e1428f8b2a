package whatsappgo

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.mau.fi/util/random"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/response"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/types"
)

// GetMedia fetches the metadata of a media object by id.
func (c *Client) GetMedia(ctx context.Context, mediaID string) (*response.Envelope[response.MediaMetadata], error) {
	headers := c.buildHeaders(types.HeaderOpts{
		WithAuthToken: true,
		Accept:        types.ContentTypeJSON,
	})

	mediaURL := routing.MediaURL(c.config.BaseURL, c.config.APIVersion, mediaID)
	resp, respBody, err := c.MakeRequest(ctx, http.MethodGet, mediaURL, headers, nil)
	if err != nil {
		return nil, err
	}

	return response.Classify[response.MediaMetadata](response.NewRaw(resp, respBody))
}

// DownloadMedia streams mediaURL into filePath. The media type resolves to the
// outbound content-type header but is NOT checked against the supported-type table:
// the provider accepts types beyond the documented list, so a local check would
// reject valid downloads.
//
// The returned envelope echoes the transfer status and body rather than provider
// metadata; on any status other than 200 nothing is written to filePath.
func (c *Client) DownloadMedia(ctx context.Context, mediaURL string, filePath string, mediaType string) (*response.Envelope[response.TransferAck], error) {
	headers := c.buildHeaders(types.HeaderOpts{
		WithAuthToken: true,
		ContentType:   types.ContentType(types.ContentTypeHeader(mediaType)),
	})

	resp, body, err := c.StreamGet(ctx, mediaURL, headers)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		status := resp.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return &response.Envelope[response.TransferAck]{Failure: &response.ErrorPayload{
			Status:  status,
			Body:    body,
			IsError: true,
		}}, nil
	}

	if err = writeFileAtomic(filePath, body); err != nil {
		return nil, err
	}

	c.Logger.Debug().
		Str("url", mediaURL).
		Str("file_path", filePath).
		Int("byte_size", len(body)).
		Msg("Downloaded media to file")

	return &response.Envelope[response.TransferAck]{Success: &response.TransferAck{
		Success: true,
		Status:  resp.StatusCode,
		Body:    body,
	}}, nil
}

// UploadMedia uploads the file at filePath on behalf of senderID. The path must
// reference an existing regular file; otherwise a *FileNotFoundError is returned
// before any network call is made.
func (c *Client) UploadMedia(ctx context.Context, senderID string, filePath string, mediaType string) (*response.Envelope[response.MediaMetadata], error) {
	info, err := os.Stat(filePath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &FileNotFoundError{Path: filePath}
	}

	body, contentType, err := encodeMediaMultipart(filePath, mediaType)
	if err != nil {
		return nil, err
	}

	headers := c.buildHeaders(types.HeaderOpts{
		WithAuthToken: true,
		ContentType:   contentType,
		Accept:        types.ContentTypeJSON,
	})

	uploadURL := routing.UploadMediaURL(c.config.BaseURL, c.config.APIVersion, senderID)
	resp, respBody, err := c.MakeRequest(ctx, http.MethodPost, uploadURL, headers, body)
	if err != nil {
		return nil, err
	}

	return response.Classify[response.MediaMetadata](response.NewRaw(resp, respBody))
}

// DeleteMedia deletes a media object by id.
func (c *Client) DeleteMedia(ctx context.Context, mediaID string) (*response.Envelope[response.SuccessAck], error) {
	headers := c.buildHeaders(types.HeaderOpts{
		WithAuthToken: true,
		Accept:        types.ContentTypeJSON,
	})

	mediaURL := routing.MediaURL(c.config.BaseURL, c.config.APIVersion, mediaID)
	resp, respBody, err := c.MakeRequest(ctx, http.MethodDelete, mediaURL, headers, nil)
	if err != nil {
		return nil, err
	}

	return response.Classify[response.SuccessAck](response.NewRaw(resp, respBody))
}

// writeFileAtomic stages the data next to the target and renames it into place, so
// a failed write never leaves a truncated file at path.
func writeFileAtomic(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, random.String(8))
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
