package entity

type OrderStatus string

const (
	StatusPendingConfirmation OrderStatus = "PendingConfirmation"
	StatusConfirmed           OrderStatus = "Confirmed"
	StatusOutForDelivery      OrderStatus = "OutForDelivery"
	StatusDelivered           OrderStatus = "Delivered"
	StatusCancelled           OrderStatus = "Cancelled"

	// Administrative terminal, counts as Delivered for review and
	// cancellation eligibility.
	StatusPaid OrderStatus = "Paid"
)

// Recognized reports whether s is a status an admin may set on an order.
func (s OrderStatus) Recognized() bool {
	switch s {
	case StatusPendingConfirmation, StatusConfirmed, StatusOutForDelivery,
		StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is expected from s.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusPaid:
		return true
	}
	return false
}

// DeliveredEquivalent reports whether s counts as a completed purchase.
func (s OrderStatus) DeliveredEquivalent() bool {
	return s == StatusDelivered || s == StatusPaid
}

// transitions is the legal customer-facing flow. Cancellation is allowed
// from every non-terminal state; forward movement is strictly linear.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPendingConfirmation: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery:      {StatusDelivered, StatusCancelled},
}

// CanTransition reports whether moving from -> to follows the normal flow.
// Administrative status updates bypass this table on purpose.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
