package routes

import (
	"net/http"
	"strings"

	"freightdesk/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(path string, fn http.HandlerFunc) {
	http.Handle(path, withCORS(http.HandlerFunc(handlers.RecoverWrapper(fn))))
}

// SetupRoutes registers the HTTP surface. In remote mode the service is a
// gateway over the upstream API, so the local-only surfaces (signup/login,
// memos) are not registered.
func SetupRoutes(
	userHandler *handlers.UserHandler,
	referenceHandler *handlers.ReferenceHandler,
	partyHandler *handlers.PartyHandler,
	bookingHandler *handlers.BookingHandler,
	sessionHandler *handlers.SessionHandler,
	memoHandler *handlers.MemoHandler,
	remote bool,
) {
	if !remote {
		handle("/signup", userHandler.Signup)
		handle("/login", userHandler.Login)
	}

	// Reference data
	handle("/branches", referenceHandler.Branches)
	handle("/article-shapes", referenceHandler.ArticleShapes)
	handle("/goods-types", referenceHandler.GoodsTypes)
	handle("/bill-types", referenceHandler.BillTypes)
	handle("/payment-types", referenceHandler.PaymentTypes)
	handle("/rate-types", referenceHandler.RateTypes)

	// Parties
	handle("/parties/consignors", partyHandler.Consignors)
	handle("/parties/consignees", partyHandler.Consignees)
	handle("/parties", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			partyHandler.CreateParty(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Bookings
	handle("/bookings/next-lr-number", bookingHandler.NextLRNumber)
	handle("/bookings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			bookingHandler.ListBookings(w, r)
		case http.MethodDelete:
			bookingHandler.DeleteBooking(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/bookings/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/bookings/"):]
		if id != "" && r.Method == http.MethodGet {
			bookingHandler.GetBookingByID(w, r, id)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	// Editing sessions
	handle("/sessions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			sessionHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/sessions/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path[len("/sessions/"):], "/"), "/")
		if len(parts) == 0 || parts[0] == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		id := parts[0]

		switch {
		case len(parts) == 1 && r.Method == http.MethodGet:
			sessionHandler.Get(w, r, id)
		case len(parts) == 1 && r.Method == http.MethodDelete:
			sessionHandler.Close(w, r, id)
		case len(parts) == 2 && parts[1] == "header" && r.Method == http.MethodPatch:
			sessionHandler.PatchHeader(w, r, id)
		case len(parts) == 2 && parts[1] == "selection" && r.Method == http.MethodPut:
			sessionHandler.PutSelection(w, r, id)
		case len(parts) == 2 && parts[1] == "rows" && r.Method == http.MethodPost:
			sessionHandler.PostRow(w, r, id)
		case len(parts) == 3 && parts[1] == "rows" && r.Method == http.MethodPut:
			sessionHandler.PutRow(w, r, id, parts[2])
		case len(parts) == 3 && parts[1] == "rows" && r.Method == http.MethodDelete:
			sessionHandler.DeleteRow(w, r, id, parts[2])
		case len(parts) == 2 && parts[1] == "submit" && r.Method == http.MethodPost:
			sessionHandler.Submit(w, r, id)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	// Derived documents
	if !remote {
		handle("/loading-memos", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost:
				memoHandler.CreateLoadingMemo(w, r)
			case http.MethodGet:
				memoHandler.ListLoadingMemos(w, r)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		})
		handle("/cash-memos", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost:
				memoHandler.CreateCashMemo(w, r)
			case http.MethodGet:
				memoHandler.ListCashMemos(w, r)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		})
	}
}
