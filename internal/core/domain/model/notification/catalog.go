package notification

import (
	"fmt"

	"aquasphere/internal/core/domain/model/order"
)

// Category groups notifications for styling in the dropdown.
type Category string

const (
	CategoryOrder        Category = "order"
	CategoryPayment      Category = "payment"
	CategoryDelivery     Category = "delivery"
	CategoryCancellation Category = "cancellation"
)

// Message is the user-facing text for one status.
type Message struct {
	Title       string
	Description string
	Icon        string
	Category    Category
}

// template is a catalog row. cod and prepaid are set only for statuses whose
// wording depends on the payment method; %s receives the method's display name.
type template struct {
	title    string
	icon     string
	category Category
	text     string
	cod      string
	prepaid  string
}

func catalog() map[order.Status]template {
	return map[order.Status]template{
		order.Pending: {
			title:    "Order placed",
			icon:     "receipt",
			category: CategoryOrder,
			text:     "We received your order and will confirm it shortly.",
		},
		order.Paid: {
			title:    "Payment received",
			icon:     "credit-card",
			category: CategoryPayment,
			text:     "Your payment was confirmed. We will start preparing your order.",
		},
		order.Preparing: {
			title:    "Preparing your order",
			icon:     "droplet",
			category: CategoryOrder,
			text:     "Your water is being refilled and sealed.",
		},
		order.Shipped: {
			title:    "Order shipped",
			icon:     "package",
			category: CategoryDelivery,
			text:     "Your order has left the station.",
		},
		order.OutForDelivery: {
			title:    "Out for delivery",
			icon:     "truck",
			category: CategoryDelivery,
			cod:      "Our rider is on the way. Please prepare the exact amount for cash on delivery.",
			prepaid:  "Our rider is on the way. Your order is already paid via %s.",
		},
		order.Delivered: {
			title:    "Order delivered",
			icon:     "check-circle",
			category: CategoryDelivery,
			text:     "Your order was delivered. Thank you for choosing AquaSphere!",
		},
		order.CancellationRequested: {
			title:    "Cancellation requested",
			icon:     "hourglass",
			category: CategoryCancellation,
			cod:      "We received your cancellation request and will review it shortly.",
			prepaid:  "We received your cancellation request. If approved, your %s payment will be refunded.",
		},
		order.Cancelled: {
			title:    "Order cancelled",
			icon:     "x-circle",
			category: CategoryCancellation,
			cod:      "Your order was cancelled. No payment is due.",
			prepaid:  "Your order was cancelled. Your %s payment will be refunded within 3-5 business days.",
		},
	}
}

// MessageFor returns the catalog message for a status and payment method.
// It fails only for statuses outside the enumeration.
func MessageFor(status order.Status, paymentMethod order.PaymentMethod) (Message, error) {
	t, ok := catalog()[status]
	if !ok {
		return Message{}, fmt.Errorf("%w: %q has no notification message", order.ErrInvalidTarget, string(status))
	}

	description := t.text
	switch {
	case t.cod == "":
	case paymentMethod.IsCashOnDelivery():
		description = t.cod
	default:
		description = fmt.Sprintf(t.prepaid, paymentMethod.DisplayName())
	}

	return Message{
		Title:       t.title,
		Description: description,
		Icon:        t.icon,
		Category:    t.category,
	}, nil
}
