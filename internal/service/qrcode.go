package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(cafeID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(cafeID string) ([]byte, error) {
	link := fmt.Sprintf("%s/cafe.html?id=%s", g.BaseURL, cafeID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
