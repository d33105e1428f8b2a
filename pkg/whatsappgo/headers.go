package whatsappgo

import (
	"net/http"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/types"
)

func (c *Client) buildHeaders(opts types.HeaderOpts) http.Header {
	headers := make(http.Header)

	if opts.WithAuthToken {
		headers.Set("authorization", "Bearer "+c.config.AccessToken)
	}

	if opts.ContentType != types.ContentTypeNone {
		headers.Set("content-type", string(opts.ContentType))
	}

	if opts.Accept != types.ContentTypeNone {
		headers.Set("accept", string(opts.Accept))
	}

	for k, v := range opts.Extra {
		headers.Set(k, v)
	}

	return headers
}
