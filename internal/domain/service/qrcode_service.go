package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateOrderQR renders the order number as a PNG for studio check-in
	GenerateOrderQR(orderNumber string) ([]byte, error)
}
