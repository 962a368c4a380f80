package sendeo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kargohub/sendeo-gateway/internal/delivery"
	"github.com/kargohub/sendeo-gateway/internal/geocode"
	"github.com/kargohub/sendeo-gateway/internal/util"
	"github.com/rs/zerolog/log"
)

// CreateShipment registers a parcel with the carrier's command API and
// returns the normalized result. Failures are terminal: nothing is retried
// and there is no manual fallback mode — reconciling a shipment that was
// created at the carrier while the local order update failed is the
// caller's job.
func (s *Service) CreateShipment(ctx context.Context, request delivery.CreateShipmentRequest) (*delivery.ShipmentResult, error) {
	if err := validateCreateShipment(request); err != nil {
		return nil, err
	}

	address := s.resolver.Resolve(ctx, request.CityName, request.DistrictName)
	if address.Source == geocode.SourceHeuristic {
		log.Warn().
			Str("order_id", request.OrderID).
			Str("district", request.DistrictName).
			Int("district_code", address.DistrictCode).
			Msg("district code is a guess, shipment routes to the province-level bucket")
	}

	referenceID := util.GenerateReferenceID(request.OrderID)
	barcode := util.GenerateParcelBarcode()

	// Recipient SMS is on by default; a caller that opts the sender in has
	// made an explicit choice and gets exactly what it asked for.
	smsToSender := 0
	if request.SMSToSender {
		smsToSender = 1
	}
	smsToRecipient := 1
	if request.SMSToSender && !request.SMSToRecipient {
		smsToRecipient = 0
	}

	body := createOrderRequest{
		Order: orderPayload{
			ReferenceID:    referenceID,
			Description:    request.Content,
			DeliveryType:   request.DeliveryType,
			PayorType:      request.PayorType,
			SMSToSender:    smsToSender,
			SMSToRecipient: smsToRecipient,
		},
		OrderPieceList: []piecePayload{
			{
				Barcode: barcode,
				Desi:    request.Desi,
				Kg:      request.WeightKg,
				Content: request.Content,
			},
		},
		Recipient: recipientPayload{
			CustomerName: request.CustomerName,
			Phone:        util.NormalizePhone(request.CustomerPhone),
			Email:        request.CustomerEmail,
			Address:      request.ShippingAddress,
			CityCode:     address.CityCode,
			DistrictCode: address.DistrictCode,
		},
	}

	raw, err := s.call(ctx, APICommand, http.MethodPost, "/createOrder", body)
	if err != nil {
		return nil, err
	}

	var parsed createOrderResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse create order response: %w", err)
	}

	// The carrier populates orderNo or trackingNumber depending on the
	// endpoint version; when both are absent the local reference id still
	// identifies the shipment on their side.
	trackingNumber := parsed.OrderNo
	if trackingNumber == "" {
		trackingNumber = parsed.TrackingNumber
	}
	if trackingNumber == "" {
		trackingNumber = referenceID
	}

	carrierBarcode := parsed.Barcode
	if carrierBarcode == "" {
		carrierBarcode = barcode
	}

	log.Info().
		Str("order_id", request.OrderID).
		Str("tracking_number", trackingNumber).
		Str("address_source", string(address.Source)).
		Msg("shipment created at carrier")

	return &delivery.ShipmentResult{
		TrackingNumber:    trackingNumber,
		Barcode:           carrierBarcode,
		CarrierLabel:      parsed.Label,
		EstimatedDelivery: parsed.EstimatedDelivery,
		ShipmentID:        parsed.ShipmentID,
	}, nil
}

func validateCreateShipment(request delivery.CreateShipmentRequest) error {
	switch {
	case request.OrderID == "":
		return &delivery.ValidationError{Field: "orderId"}
	case request.CustomerName == "":
		return &delivery.ValidationError{Field: "customerName"}
	case request.CustomerPhone == "":
		return &delivery.ValidationError{Field: "customerPhone"}
	case request.ShippingAddress == "":
		return &delivery.ValidationError{Field: "shippingAddress"}
	}
	return nil
}
