package api

const (
	// DefaultBaseURL points at a locally hosted backend. Override with
	// WithBaseURL or the TRIP_BASE_URL environment variable.
	DefaultBaseURL = "http://localhost:8000"

	// EndpointAttractions lists attractions a page at a time.
	// Params: page (cursor), keyword (optional)
	EndpointAttractions = "/api/attractions"

	// EndpointAttraction returns one attraction by ID (append "/<id>").
	EndpointAttraction = "/api/attraction"

	// EndpointMRTs returns the MRT station names for the quick-filter bar.
	EndpointMRTs = "/api/mrts"

	// EndpointFavorite lists, adds, or removes favorites.
	// POST/DELETE param: attractionId
	EndpointFavorite = "/api/favorite"

	// EndpointUser creates an account (POST).
	EndpointUser = "/api/user"

	// EndpointUserAuth issues a token (PUT) or verifies one (GET).
	EndpointUserAuth = "/api/user/auth"

	// EndpointBooking manages the single pending booking (POST/GET/DELETE).
	EndpointBooking = "/api/booking"

	// EndpointOrders submits an order with a payment prime (POST).
	EndpointOrders = "/api/orders"

	// EndpointOrder returns one order by number (append "/<number>").
	EndpointOrder = "/api/order"

	// EndpointMember returns the member dashboard payload.
	EndpointMember = "/api/member"
)

// BookingTimes are the accepted values for a booking's time slot.
var BookingTimes = []string{"morning", "afternoon"}
