package models

// ProvisionRequest asks for a new staff account. Credentials are generated
// server side; callers only supply who the person is.
type ProvisionRequest struct {
	FullName       string  `json:"full_name"`
	Role           string  `json:"role"`
	Position       string  `json:"position,omitempty"`
	CommissionRate float64 `json:"commission_rate,omitempty"`
	LicenseNo      string  `json:"license_no,omitempty"`
}

// ProvisionedAccount is the one-time response to a provisioning request.
// The plaintext password is returned here and never stored.
type ProvisionedAccount struct {
	Actor    *Actor  `json:"actor"`
	Driver   *Driver `json:"driver,omitempty"`
	Password string  `json:"password"`
}

// LoginRequest is the payload for staff authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the session token issued on a successful login.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Actor     *Actor `json:"actor"`
}
