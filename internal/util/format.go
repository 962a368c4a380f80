package util

import (
	"strconv"
	"strings"
	"time"
)

// GenerateReferenceID derives the carrier-facing reference from an order id:
// upper-cased, everything except letters and digits stripped.
func GenerateReferenceID(orderID string) string {
	upper := strings.ToUpper(orderID)

	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, upper)
}

// GenerateParcelBarcode returns a locally-unique barcode built from a
// nanosecond timestamp encoded in base 36.
func GenerateParcelBarcode() string {
	return strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
}

// NormalizePhone strips a phone number down to its digits before it is
// submitted to the carrier.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
