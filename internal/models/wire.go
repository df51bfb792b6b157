package models

type Encoding string

const (
	EncodingMultipart Encoding = "multipart"
	EncodingJSON      Encoding = "json"
)

// WireRequest is a fully encoded request body, ready to send.
type WireRequest struct {
	Encoding    Encoding
	ContentType string
	Body        []byte
}
