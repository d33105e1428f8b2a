package whatsappgo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/payload"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/response"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/types"
)

// SendText sends a plain text message from the configured phone number.
func (c *Client) SendText(ctx context.Context, to string, text string) (*response.Envelope[response.MessageSentResponse], error) {
	p := payload.SendMessagePayload{
		MessagingProduct: payload.MessagingProduct,
		RecipientType:    "individual",
		To:               to,
		Type:             payload.MessageKindText,
		Text:             &payload.Text{Body: text},
	}
	return c.sendMessage(ctx, p)
}

// SendMedia sends a previously uploaded media object (or an external link) as a
// message of the given kind.
func (c *Client) SendMedia(ctx context.Context, to string, kind payload.MessageKind, media payload.Media) (*response.Envelope[response.MessageSentResponse], error) {
	p := payload.SendMessagePayload{
		MessagingProduct: payload.MessagingProduct,
		RecipientType:    "individual",
		To:               to,
		Type:             kind,
	}

	switch kind {
	case payload.MessageKindImage:
		p.Image = &media
	case payload.MessageKindAudio:
		p.Audio = &media
	case payload.MessageKindDocument:
		p.Document = &media
	case payload.MessageKindSticker:
		p.Sticker = &media
	case payload.MessageKindVideo:
		p.Video = &media
	default:
		return nil, fmt.Errorf("cannot send media as message kind %q", kind)
	}

	return c.sendMessage(ctx, p)
}

func (c *Client) sendMessage(ctx context.Context, p payload.SendMessagePayload) (*response.Envelope[response.MessageSentResponse], error) {
	payloadBytes, err := p.Encode()
	if err != nil {
		return nil, err
	}

	headers := c.buildHeaders(types.HeaderOpts{
		WithAuthToken: true,
		ContentType:   types.ContentTypeJSON,
		Accept:        types.ContentTypeJSON,
	})

	messagesURL := routing.MessagesURL(c.config.BaseURL, c.config.APIVersion, c.config.PhoneNumberID)
	resp, respBody, err := c.MakeRequest(ctx, http.MethodPost, messagesURL, headers, payloadBytes)
	if err != nil {
		return nil, err
	}

	return response.Classify[response.MessageSentResponse](response.NewRaw(resp, respBody))
}
