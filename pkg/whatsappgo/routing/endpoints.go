package routing

import (
	"fmt"
	"net/url"
)

const GraphHost = "graph.facebook.com"

const (
	GraphBaseURL      = "https://" + GraphHost
	DefaultAPIVersion = "v19.0"
)

// MediaURL is the endpoint for fetching or deleting a media object by id.
func MediaURL(baseURL, apiVersion, mediaID string) string {
	return fmt.Sprintf("%s/%s/%s", baseURL, apiVersion, url.PathEscape(mediaID))
}

// UploadMediaURL is the endpoint for uploading media on behalf of a sender number.
func UploadMediaURL(baseURL, apiVersion, senderID string) string {
	return fmt.Sprintf("%s/%s/%s/media", baseURL, apiVersion, url.PathEscape(senderID))
}

func MessagesURL(baseURL, apiVersion, phoneNumberID string) string {
	return fmt.Sprintf("%s/%s/%s/messages", baseURL, apiVersion, url.PathEscape(phoneNumberID))
}

func TemplatesURL(baseURL, apiVersion, businessAccountID string) string {
	return fmt.Sprintf("%s/%s/%s/message_templates", baseURL, apiVersion, url.PathEscape(businessAccountID))
}

func PhoneNumbersURL(baseURL, apiVersion, businessAccountID string) string {
	return fmt.Sprintf("%s/%s/%s/phone_numbers", baseURL, apiVersion, url.PathEscape(businessAccountID))
}

func PhoneNumberURL(baseURL, apiVersion, phoneNumberID string) string {
	return fmt.Sprintf("%s/%s/%s", baseURL, apiVersion, url.PathEscape(phoneNumberID))
}
