package order

import (
	"fmt"
	"strings"

	"aquasphere/internal/pkg/errs"
)

// PaymentMethod is fixed when the order is placed. It only changes how
// notifications are phrased (cash due on delivery vs. refund language).
type PaymentMethod string

const (
	CashOnDelivery PaymentMethod = "COD"
	GCash          PaymentMethod = "GCASH"
	Card           PaymentMethod = "CARD"
	PayMaya        PaymentMethod = "PAYMAYA"
)

func getPaymentMethods() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		CashOnDelivery: "Cash on Delivery",
		GCash:          "GCash",
		Card:           "Card",
		PayMaya:        "Maya",
	}
}

// ParsePaymentMethod upper-cases and trims its input; an empty value means COD.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return CashOnDelivery, nil
	}

	pm := PaymentMethod(trimmed)
	if err := pm.Validate(); err != nil {
		return "", err
	}
	return pm, nil
}

func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethods()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", string(p)))
	}
	return nil
}

// IsCashOnDelivery reports whether money changes hands at the door.
func (p PaymentMethod) IsCashOnDelivery() bool {
	return p == CashOnDelivery
}

// DisplayName is the customer-facing label, e.g. "GCash".
func (p PaymentMethod) DisplayName() string {
	if name, ok := getPaymentMethods()[p]; ok {
		return name
	}
	return string(p)
}

func (p PaymentMethod) String() string {
	return string(p)
}
