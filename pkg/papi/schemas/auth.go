package schemas

// LoginRequest is the payload for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" doc:"Account email"`
	Password string `json:"password" doc:"Account password"`
}

// TokenData is the "data" object of login and refresh responses. Refresh
// responses carry only a new access token; the refresh token field stays
// empty.
type TokenData struct {
	AccessToken  string `json:"accessToken" doc:"Short-lived bearer token"`
	RefreshToken string `json:"refreshToken,omitempty" doc:"Long-lived token used to mint new access tokens"`
}

// LoginUser is the embedded user summary a login response carries next to the
// token pair.
type LoginUser struct {
	ID    string `json:"id" doc:"User id"`
	Name  string `json:"name" doc:"Display name"`
	Email string `json:"email" doc:"Account email"`
}

// LoginResponseBody is the body of a successful login.
type LoginResponseBody struct {
	Data TokenData `json:"data"`
	User LoginUser `json:"user"`
}

// RefreshRequest is the payload for POST /users/refresh-token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" doc:"Refresh token from login"`
}

// RefreshResponseBody is the body of a successful refresh.
type RefreshResponseBody struct {
	Data TokenData `json:"data"`
}

// Me is the server-verified identity behind the presented access token.
type Me struct {
	ID    string `json:"id" doc:"User id"`
	Name  string `json:"name" doc:"Display name"`
	Email string `json:"email" doc:"Account email"`
	Role  string `json:"role,omitempty" doc:"Account role"`
}

// MeResponseBody is the body of GET /users/me.
type MeResponseBody struct {
	Success bool   `json:"success"`
	Data    Me     `json:"data"`
	Message string `json:"message,omitempty"`
}
