package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(tableID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/menu.html?table_id=%d", g.BaseURL, tableID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
