package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	ErrBadRequest     = "BAD_REQUEST"
	ErrUnauthorized   = "UNAUTHORIZED"
	ErrForbidden      = "FORBIDDEN"
	ErrNotFound       = "NOT_FOUND"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// Guard rejection messages. Clients key off the message body, so the
// wording matches the deployed API.
const (
	MsgUnauthorized = "Unauthorized Access"
	MsgForbidden    = "Forbidden"
)

// TokenResponse is the body returned by the token issuance endpoint.
type TokenResponse struct {
	AccessToken string `json:"AccessToken"`
}

// InsertAck acknowledges a single-document insert. InsertedID is nil
// when the insert was skipped (idempotent user registration).
type InsertAck struct {
	Message    string      `json:"message,omitempty"`
	InsertedID interface{} `json:"insertedId"`
}

// UpdateAck acknowledges a single-document update.
type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteAck acknowledges a single-document delete.
type DeleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}
