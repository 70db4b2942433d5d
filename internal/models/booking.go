package models

// BookingAttraction is the attraction summary embedded in bookings and orders.
type BookingAttraction struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Image   string `json:"image"`
}

// Booking is the user's single pending booking.
type Booking struct {
	Attraction BookingAttraction `json:"attraction"`
	Date       string            `json:"date"` // YYYY-MM-DD
	Time       string            `json:"time"` // "morning" or "afternoon"
	Price      int               `json:"price"`
}

// BookingRequest creates or replaces the pending booking.
type BookingRequest struct {
	AttractionID int    `json:"attractionId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Price        int    `json:"price"`
}

// BookingResponse wraps a booking fetch; Data is null when nothing is booked.
type BookingResponse struct {
	Data *Booking `json:"data"`
}

// Trip is one booked attraction visit inside an order.
type Trip struct {
	Attraction BookingAttraction `json:"attraction"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
}

// Contact is the order contact information.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderRequest submits an order. Prime is the opaque token produced by the
// external payment tokenizer; it is forwarded untouched.
type OrderRequest struct {
	Prime string       `json:"prime"`
	Order OrderPayload `json:"order"`
}

// OrderPayload is the order body sent alongside the payment token.
type OrderPayload struct {
	Price   int     `json:"price"`
	Trip    Trip    `json:"trip"`
	Contact Contact `json:"contact"`
}

// Payment is the settlement status attached to an order.
type Payment struct {
	Status  int    `json:"status"` // 0 means paid
	Message string `json:"message"`
}

// Order is a created or fetched order.
type Order struct {
	Number  string  `json:"number"`
	Price   int     `json:"price"`
	Trip    Trip    `json:"trip"`
	Contact Contact `json:"contact"`
	Status  int     `json:"status"`
	Payment Payment `json:"payment"`
}

// Paid reports whether the order was settled.
func (o Order) Paid() bool {
	return o.Status == 0 || o.Payment.Status == 0
}
