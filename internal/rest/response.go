package rest

import "myMiloStore/domain"

// StatusResponse is the flat {"success": ...} body shared by every mutating
// endpoint. Failures of any kind collapse into success=false; nothing in the
// contract distinguishes them.
type StatusResponse struct {
	Success bool `json:"success"`
}

// CheckoutResponse adds the optional error field observed on the checkout and
// status-update paths. An unparsable payload carries the literal "JSON ERROR".
type CheckoutResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user,omitempty"`
}

const msgJSONError = "JSON ERROR"
