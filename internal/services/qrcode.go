package services

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrCodeSize = 300

// QRCodeService renders the PNG label stuck onto physical equipment. The
// code encodes the public lookup URL, not the internal row id.
type QRCodeService struct {
	publicBaseURL string
}

func NewQRCodeService(publicBaseURL string) *QRCodeService {
	return &QRCodeService{publicBaseURL: publicBaseURL}
}

func (s *QRCodeService) GenerateEquipmentQR(publicID string) ([]byte, error) {
	url := fmt.Sprintf("%s/public/equipment/%s", s.publicBaseURL, publicID)
	png, err := qrcode.Encode(url, qrcode.Medium, qrCodeSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
