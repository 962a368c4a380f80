package sendeo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/kargohub/sendeo-gateway/internal/delivery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipmentRequest() delivery.CreateShipmentRequest {
	return delivery.CreateShipmentRequest{
		OrderID:         "ord-123",
		CustomerName:    "Ayşe Yılmaz",
		CustomerPhone:   "+90 (555) 111-22-33",
		CustomerEmail:   "ayse@example.com",
		ShippingAddress: "Caferağa Mah. Moda Cad. No:1",
		CityName:        "Istanbul",
		DistrictName:    "kadikoy",
		WeightKg:        1.5,
		Desi:            3,
		Content:         "kitap",
	}
}

func TestCreateShipment_MissingFieldFailsBeforeNetwork(t *testing.T) {
	carrier := newFakeCarrier(t, identityOK("jwt", time.Hour), nil, jsonHandler(200, `{}`), nil)
	service := carrier.service()

	testCases := []struct {
		field  string
		mutate func(*delivery.CreateShipmentRequest)
	}{
		{"orderId", func(r *delivery.CreateShipmentRequest) { r.OrderID = "" }},
		{"customerName", func(r *delivery.CreateShipmentRequest) { r.CustomerName = "" }},
		{"customerPhone", func(r *delivery.CreateShipmentRequest) { r.CustomerPhone = "" }},
		{"shippingAddress", func(r *delivery.CreateShipmentRequest) { r.ShippingAddress = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			request := validShipmentRequest()
			tc.mutate(&request)

			_, err := service.CreateShipment(context.Background(), request)

			var validationErr *delivery.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}

	// No outbound HTTP at all for invalid input.
	assert.EqualValues(t, 0, carrier.identityCalls.Load())
	assert.EqualValues(t, 0, carrier.commandCalls.Load())
	assert.EqualValues(t, 0, carrier.referenceCalls.Load())
}

func TestCreateShipment_Success(t *testing.T) {
	var mu sync.Mutex
	var captured createOrderRequest

	carrier := newFakeCarrier(t,
		identityOK("jwt", time.Hour),
		nil,
		func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			require.NoError(t, json.Unmarshal(body, &captured))
			mu.Unlock()
			jsonHandler(200, `{"orderNo":"SND-4815162342","shipmentId":"9001","estimatedDeliveryDate":"02.09.2026"}`)(w, r)
		},
		jsonHandler(200, `[{"code":3421,"name":"Kadıköy"},{"code":3406,"name":"Beşiktaş"}]`),
	)
	service := carrier.service()

	result, err := service.CreateShipment(context.Background(), validShipmentRequest())
	require.NoError(t, err)

	assert.Equal(t, "SND-4815162342", result.TrackingNumber)
	assert.Equal(t, "9001", result.ShipmentID)
	assert.Equal(t, "02.09.2026", result.EstimatedDelivery)
	assert.NotEmpty(t, result.Barcode)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "ORD123", captured.Order.ReferenceID)
	assert.Equal(t, 34, captured.Recipient.CityCode)
	assert.Equal(t, 3421, captured.Recipient.DistrictCode)
	assert.Equal(t, "905551112233", captured.Recipient.Phone)
	require.Len(t, captured.OrderPieceList, 1)
	assert.Equal(t, 1.5, captured.OrderPieceList[0].Kg)
	assert.Equal(t, float64(3), captured.OrderPieceList[0].Desi)
	assert.NotEmpty(t, captured.OrderPieceList[0].Barcode)
}

func TestCreateShipment_TrackingNumberFallsBackToTrackingField(t *testing.T) {
	carrier := newFakeCarrier(t,
		identityOK("jwt", time.Hour),
		nil,
		jsonHandler(200, `{"trackingNumber":"TRK-77"}`),
		jsonHandler(200, `[]`),
	)
	service := carrier.service()

	result, err := service.CreateShipment(context.Background(), validShipmentRequest())
	require.NoError(t, err)
	assert.Equal(t, "TRK-77", result.TrackingNumber)
}

func TestCreateShipment_TrackingNumberFallsBackToLocalReference(t *testing.T) {
	carrier := newFakeCarrier(t,
		identityOK("jwt", time.Hour),
		nil,
		jsonHandler(200, `{}`),
		jsonHandler(200, `[]`),
	)
	service := carrier.service()

	result, err := service.CreateShipment(context.Background(), validShipmentRequest())
	require.NoError(t, err)

	// Carrier omitted both orderNo and trackingNumber; the locally generated
	// reference id still identifies the shipment.
	assert.Equal(t, "ORD123", result.TrackingNumber)
}

func TestCreateShipment_UpstreamFailureIsTerminal(t *testing.T) {
	carrier := newFakeCarrier(t,
		identityOK("jwt", time.Hour),
		nil,
		jsonHandler(http.StatusBadRequest, `{"message":"invalid address"}`),
		jsonHandler(200, `[]`),
	)
	service := carrier.service()

	_, err := service.CreateShipment(context.Background(), validShipmentRequest())
	require.Error(t, err)

	var upstreamErr *delivery.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "invalid address", upstreamErr.Message)

	// Exactly one command call: no automatic retry on write paths.
	assert.EqualValues(t, 1, carrier.commandCalls.Load())
}

func TestCreateShipment_AbortsWhenTokenUnavailable(t *testing.T) {
	carrier := newFakeCarrier(t,
		identityFailing(),
		nil,
		jsonHandler(200, `{"orderNo":"SND-1"}`),
		jsonHandler(200, `[]`),
	)
	service := carrier.service()

	_, err := service.CreateShipment(context.Background(), validShipmentRequest())
	require.Error(t, err)

	var tokenErr *delivery.TokenAcquisitionError
	require.ErrorAs(t, err, &tokenErr)
	assert.EqualValues(t, 0, carrier.commandCalls.Load())
}

func TestCreateShipment_HeuristicDistrictStillShips(t *testing.T) {
	carrier := newFakeCarrier(t,
		identityOK("jwt", time.Hour),
		nil,
		jsonHandler(200, `{"orderNo":"SND-2"}`),
		jsonHandler(http.StatusInternalServerError, `{"detail":"reference api down"}`),
	)
	service := carrier.service()

	request := validShipmentRequest()
	request.CityName = "Antalya"
	request.DistrictName = "bilinmeyen ilçe"

	result, err := service.CreateShipment(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "SND-2", result.TrackingNumber)
}
