package service

// QRCodeService renders and reads the QR codes diners scan at a restaurant
// to follow it.
type QRCodeService interface {
	// GenerateRestaurantQR returns a PNG whose payload names the restaurant.
	GenerateRestaurantQR(restaurantName string) ([]byte, error)

	// ParseRestaurantQR returns the trimmed restaurant name from a scanned payload.
	ParseRestaurantQR(qrData string) (string, error)
}
