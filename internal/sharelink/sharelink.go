// Package sharelink builds the "?doc=<id>" links that reproduce a verification
// and renders them as QR codes.
package sharelink

import (
	"errors"
	"fmt"
	"net/url"

	qr "github.com/skip2/go-qrcode"
)

const (
	QueryParam    = "doc"
	DefaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

var (
	ErrMissingDoc = errors.New("share link has no doc parameter")
	ErrEmptyID    = errors.New("share link needs a document id")
)

// Build returns origin + path + "?doc=" + id. The id is query-escaped, which
// leaves well-formed ids unchanged and keeps Extract an exact inverse.
func Build(origin, path, id string) string {
	return origin + path + "?" + QueryParam + "=" + url.QueryEscape(id)
}

// Extract returns the doc parameter of a share link.
func Extract(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse share link: %w", err)
	}
	values := u.Query()
	if !values.Has(QueryParam) {
		return "", ErrMissingDoc
	}
	return values.Get(QueryParam), nil
}

// QRCode encodes link as a size x size PNG.
func QRCode(link string, size int) ([]byte, error) {
	if size < minQRSize || size > maxQRSize {
		size = DefaultQRSize
	}
	data, err := qr.Encode(link, qr.Medium, size)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Builder binds the public origin and verification path of a deployment.
type Builder struct {
	Origin string
	Path   string
	QRSize int
}

func (b Builder) Link(id string) (string, error) {
	if id == "" {
		return "", ErrEmptyID
	}
	return Build(b.Origin, b.Path, id), nil
}

func (b Builder) QR(id string) ([]byte, error) {
	link, err := b.Link(id)
	if err != nil {
		return nil, err
	}
	return QRCode(link, b.QRSize)
}
