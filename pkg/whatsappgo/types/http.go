package types

type ContentType string

const (
	ContentTypeNone        ContentType = ""
	ContentTypeJSON        ContentType = "application/json"
	ContentTypeForm        ContentType = "application/x-www-form-urlencoded"
	ContentTypeOctetStream ContentType = "application/octet-stream"
)

type HeaderOpts struct {
	WithAuthToken bool
	ContentType   ContentType
	Accept        ContentType
	Extra         map[string]string
}
