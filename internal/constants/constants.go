package constants

import "time"

// ContextKeyClaims is the gin context key carrying the verified token claims.
const ContextKeyClaims = "claims"

// ContextKeyRequestID is the gin context key carrying the request id.
const ContextKeyRequestID = "requestID"

// RequestIDHeader is honored inbound and always set outbound.
const RequestIDHeader = "X-Request-Id"

// TokenTTL is the fixed validity window of issued tokens. There is no
// refresh mechanism; clients re-login after expiry.
const TokenTTL = 12 * time.Hour

// MinPasswordLength applies to self-service registration.
const MinPasswordLength = 6

// TemporaryPasswordLength is the length of admin-issued one-time passwords.
const TemporaryPasswordLength = 8

// AITimeout bounds the round trip to the summarization collaborator.
const AITimeout = 30 * time.Second
