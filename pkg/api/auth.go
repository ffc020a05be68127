package api

// RegisterRequest is the payload for creating a new account
type RegisterRequest struct {
	Email    string `json:"email"`    // login email, unique
	Name     string `json:"name"`     // display name shown on shared notes
	Password string `json:"password"` // plaintext over TLS, hashed server-side
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	UserID  string `json:"user_id"` // UUID of the new user
	Message string `json:"message"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries issued tokens together with the user profile,
// so the client can seed its session without a second round trip
type TokenResponse struct {
	AccessToken  string `json:"access_token"`  // JWT access token
	RefreshToken string `json:"refresh_token"` // opaque refresh token
	ExpiresIn    int64  `json:"expires_in"`    // access token lifetime in seconds
	User         User   `json:"user"`
}

// RefreshRequest exchanges a refresh token for a new token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// User is the public directory entry for a user.
// Exposed by the lookup endpoint so owners can resolve share targets.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse is the body of any non-2xx response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
