// Package entity defines the JSON response shapes of the prime-cms API.
package entity

// ErrorResp is the uniform error envelope: every failed request carries
// a single error string and a 4xx/5xx status.
type ErrorResp struct {
	Error string `json:"error"`
}

// SuccessResp acknowledges operations with no payload (login, logout).
type SuccessResp struct {
	Success bool `json:"success"`
}

// MessageResp carries a human-readable confirmation (delete, settings).
type MessageResp struct {
	Message string `json:"message"`
}

// Profile is the identity read back from the session token.
type Profile struct {
	Username string `json:"username"`
}

// DashboardCounts summarizes collection sizes for the admin home page.
type DashboardCounts struct {
	Equipment int64 `json:"equipment"`
	Brands    int64 `json:"brands"`
	Projects  int64 `json:"projects"`
}
