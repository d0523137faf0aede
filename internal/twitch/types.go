package twitch

// Stream is one entry of the helix /streams response's data array. Only the
// fields the tracker consumes are mapped.
type Stream struct {
	UserLogin   string `json:"user_login"`
	UserName    string `json:"user_name"`
	Title       string `json:"title"`
	ViewerCount uint64 `json:"viewer_count"`
}

// authResponse mirrors the oauth2/token payload. Success carries
// access_token; a credential rejection carries message instead.
type authResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}
