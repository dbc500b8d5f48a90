package common

// AuthorizationHeaderName is the HTTP header used to carry the session
// token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix prefixes the token value inside the Authorization header.
const BearerPrefix = "Bearer "
