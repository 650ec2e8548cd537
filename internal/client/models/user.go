package models

// User is a platform account as returned by /users/me and the public
// profile endpoints. Fields beyond the balance pair are optional display
// data and may be empty on public profiles.
type User struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Nickname      string `json:"nickname,omitempty"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
	Email         string `json:"email,omitempty"`
	Bio           string `json:"bio,omitempty"`
	FishBalance   int64  `json:"fishBalance"`
	CanClaimDaily bool   `json:"canClaimDaily"`
}

// LoginResult carries the bearer token issued by /users/login.
type LoginResult struct {
	Token string `json:"token"`
}

// ClaimResult is the payload of /users/me/claim-daily: the balance after
// the daily reward has been credited.
type ClaimResult struct {
	FishBalance int64 `json:"fishBalance"`
}

// RegisterRequest is the body of /users/register.
type RegisterRequest struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	Email            string `json:"email"`
	VerificationCode string `json:"verificationCode"`
}

// ProfileUpdate holds the optional fields of PATCH /users/me. Nil fields
// are omitted from the request body and left unchanged server-side.
type ProfileUpdate struct {
	Nickname *string `json:"nickname,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}
