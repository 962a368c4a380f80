package sendeo

// Wire shapes for the carrier's endpoints. Field names follow the carrier's
// JSON contract, which is camelCase throughout.

type createOrderRequest struct {
	Order          orderPayload     `json:"order"`
	OrderPieceList []piecePayload   `json:"orderPieceList"`
	Recipient      recipientPayload `json:"recipient"`
}

type orderPayload struct {
	ReferenceID    string `json:"referenceId"`
	Description    string `json:"description"`
	DeliveryType   int    `json:"deliveryType"`
	PayorType      int    `json:"payorTypeId"`
	SMSToSender    int    `json:"isSmsToSender"`
	SMSToRecipient int    `json:"isSmsToRecipient"`
}

type piecePayload struct {
	Barcode string  `json:"barcode"`
	Desi    float64 `json:"desi"`
	Kg      float64 `json:"kg"`
	Content string  `json:"content"`
}

type recipientPayload struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phoneNumber"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address"`
	CityCode     int    `json:"cityCode"`
	DistrictCode int    `json:"districtCode"`
}

type createOrderResponse struct {
	OrderNo           string `json:"orderNo"`
	TrackingNumber    string `json:"trackingNumber"`
	Barcode           string `json:"barcode"`
	Label             string `json:"label"`
	ShipmentID        string `json:"shipmentId"`
	EstimatedDelivery string `json:"estimatedDeliveryDate"`
}

type trackShipmentResponse struct {
	ReferenceID string          `json:"referenceId"`
	Events      []trackingEvent `json:"events"`
}

type trackingEvent struct {
	EventDate   string `json:"eventDate"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Branch      string `json:"branch"`
}

type shipmentStatusResponse struct {
	ReferenceID string `json:"referenceId"`
	Status      string `json:"status"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updatedAt"`
	Delivered   bool   `json:"isDelivered"`
}

type calculateRequest struct {
	CityCode     int            `json:"cityCode"`
	DistrictCode int            `json:"districtCode"`
	Address      string         `json:"address"`
	PieceList    []piecePayload `json:"pieceList"`
}

type calculateResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
