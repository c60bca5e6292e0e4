package httpx

const (
	// HeaderAuthorization carries the bearer token.
	HeaderAuthorization = "Authorization"
	// HeaderSource names the SDK operation issuing the request, e.g. "sdk/listKeys".
	HeaderSource = "Source"
	// HeaderContentType is the request/response media type header.
	HeaderContentType = "Content-Type"

	// ContentTypeJSON is the media type of JSON bodies.
	ContentTypeJSON = "application/json"
)

// Bearer formats token as an Authorization header value.
func Bearer(token string) string {
	return "Bearer " + token
}
