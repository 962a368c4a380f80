package delivery

// CreateShipmentRequest carries everything the carrier needs to register a
// parcel. It is built fresh per call by the order-creation workflow and is
// never persisted here.
type CreateShipmentRequest struct {
	OrderID         string  `json:"order_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerEmail   string  `json:"customer_email"`
	ShippingAddress string  `json:"shipping_address"`
	CityName        string  `json:"city_name"`
	DistrictName    string  `json:"district_name"`
	WeightKg        float64 `json:"weight_kg"`
	Desi            float64 `json:"desi"`
	Content         string  `json:"content"`

	// Service-type flags. Zero values fall back to the carrier defaults
	// (standard delivery, sender pays, SMS to recipient only).
	DeliveryType   int  `json:"delivery_type"`
	PayorType      int  `json:"payor_type"`
	SMSToSender    bool `json:"sms_to_sender"`
	SMSToRecipient bool `json:"sms_to_recipient"`
}

type ShipmentResult struct {
	TrackingNumber    string `json:"tracking_number"`
	Barcode           string `json:"barcode"`
	CarrierLabel      string `json:"carrier_label"`
	EstimatedDelivery string `json:"estimated_delivery"`
	ShipmentID        string `json:"shipment_id"`
}

// TrackingEvent is one entry of a shipment's movement timeline, already
// normalized from the carrier's wire shape.
type TrackingEvent struct {
	Date        string `json:"date"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type TrackingResult struct {
	ReferenceID string          `json:"reference_id"`
	Events      []TrackingEvent `json:"events"`
}

type StatusSummary struct {
	ReferenceID string `json:"reference_id"`
	Status      string `json:"status"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updated_at"`
	Delivered   bool   `json:"delivered"`
}

type RateRequest struct {
	CityCode     int     `json:"city_code"`
	DistrictCode int     `json:"district_code"`
	Address      string  `json:"address"`
	WeightKg     float64 `json:"weight_kg"`
	Desi         float64 `json:"desi"`
}

type RateResult struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
