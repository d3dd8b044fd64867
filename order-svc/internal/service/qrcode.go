package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes a link to the boleta so a diner can pull up
// their receipt by scanning the printed ticket.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(comandaID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/boleta.html?comanda_id=%d", g.BaseURL, comandaID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
