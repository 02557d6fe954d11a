package order

import (
	"encoding/json"
	"errors"
	"strings"

	"aquasphere/internal/pkg/errs"
)

// DeliveryDetails is where and when the customer wants the order. The address is
// an opaque JSON document produced by the checkout form.
type DeliveryDetails struct {
	address json.RawMessage
	date    string
	slot    string
}

func NewDeliveryDetails(address json.RawMessage, date, slot string) (DeliveryDetails, error) {
	trimmed := strings.TrimSpace(string(address))
	if trimmed == "" || trimmed == "null" {
		return DeliveryDetails{}, errs.NewValueIsRequiredError("delivery address")
	}
	if !json.Valid(address) {
		return DeliveryDetails{}, errs.NewValueIsInvalidErrorWithCause("delivery address", errors.New("not valid JSON"))
	}

	return DeliveryDetails{
		address: append(json.RawMessage(nil), address...),
		date:    strings.TrimSpace(date),
		slot:    strings.TrimSpace(slot),
	}, nil
}

// Address returns a copy of the address document.
func (d DeliveryDetails) Address() json.RawMessage {
	return append(json.RawMessage(nil), d.address...)
}

func (d DeliveryDetails) Date() string {
	return d.date
}

func (d DeliveryDetails) Slot() string {
	return d.slot
}
