package whatsappgo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/payload"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/query"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/response"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/types"
)

// GetTemplates lists the message templates of the configured business account.
func (c *Client) GetTemplates(ctx context.Context, variables query.GetTemplatesVariables) (*response.Envelope[response.TemplatesResponse], error) {
	encodedQuery, err := variables.Encode()
	if err != nil {
		return nil, err
	}

	templatesURL := routing.TemplatesURL(c.config.BaseURL, c.config.APIVersion, c.config.BusinessAccountID)
	if len(encodedQuery) > 0 {
		templatesURL = fmt.Sprintf("%s?%s", templatesURL, string(encodedQuery))
	}

	headers := c.buildHeaders(types.HeaderOpts{
		WithAuthToken: true,
		Accept:        types.ContentTypeJSON,
	})

	resp, respBody, err := c.MakeRequest(ctx, http.MethodGet, templatesURL, headers, nil)
	if err != nil {
		return nil, err
	}

	return response.Classify[response.TemplatesResponse](response.NewRaw(resp, respBody))
}

// CreateTemplate submits a new message template for review.
func (c *Client) CreateTemplate(ctx context.Context, p payload.CreateTemplatePayload) (*response.Envelope[response.TemplateCreatedResponse], error) {
	payloadBytes, err := p.Encode()
	if err != nil {
		return nil, err
	}

	headers := c.buildHeaders(types.HeaderOpts{
		WithAuthToken: true,
		ContentType:   types.ContentTypeJSON,
		Accept:        types.ContentTypeJSON,
	})

	templatesURL := routing.TemplatesURL(c.config.BaseURL, c.config.APIVersion, c.config.BusinessAccountID)
	resp, respBody, err := c.MakeRequest(ctx, http.MethodPost, templatesURL, headers, payloadBytes)
	if err != nil {
		return nil, err
	}

	return response.Classify[response.TemplateCreatedResponse](response.NewRaw(resp, respBody))
}

// DeleteTemplate deletes every language variant of the named template.
func (c *Client) DeleteTemplate(ctx context.Context, name string) (*response.Envelope[response.SuccessAck], error) {
	deleteQuery := query.DeleteTemplateQuery{Name: name}
	encodedQuery, err := deleteQuery.Encode()
	if err != nil {
		return nil, err
	}

	templatesURL := fmt.Sprintf("%s?%s",
		routing.TemplatesURL(c.config.BaseURL, c.config.APIVersion, c.config.BusinessAccountID),
		string(encodedQuery))

	headers := c.buildHeaders(types.HeaderOpts{
		WithAuthToken: true,
		Accept:        types.ContentTypeJSON,
	})

	resp, respBody, err := c.MakeRequest(ctx, http.MethodDelete, templatesURL, headers, nil)
	if err != nil {
		return nil, err
	}

	return response.Classify[response.SuccessAck](response.NewRaw(resp, respBody))
}
