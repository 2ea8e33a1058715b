package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "pasithulir_access_token"
	COOKIE_REDIRECT_NAME     = "pasithulir_redirect"
)
