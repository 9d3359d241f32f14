package booking

import "stagelink/models"

// allowedTransitions is the explicit booking status machine:
//
//	PENDING   -> CONFIRMED | REJECTED | CANCELLED
//	CONFIRMED -> COMPLETED | CANCELLED
//	REJECTED, COMPLETED, CANCELLED are terminal.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:   {models.BookingConfirmed, models.BookingRejected, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
	models.BookingRejected:  {},
	models.BookingCompleted: {},
	models.BookingCancelled: {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
