// Package qr renders share codes that point readers at an article's
// frontend page.
package qr

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const imageSize = 256

// Code is a rendered share code for one article.
type Code struct {
	ArticleID string `json:"article_id"`
	URL       string `json:"url"`
	// QRCode is a base64 PNG data URL, embeddable as an <img> src.
	QRCode string `json:"qr_code"`
}

// Generate renders the article's frontend URL as a 256px PNG QR code.
func Generate(articleID, frontendURL string) (*Code, error) {
	target := fmt.Sprintf("%s/articles/%s", strings.TrimRight(frontendURL, "/"), articleID)

	png, err := qrcode.Encode(target, qrcode.Medium, imageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	return &Code{
		ArticleID: articleID,
		URL:       target,
		QRCode:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}
