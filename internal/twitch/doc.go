// Package twitch implements the HTTP client for the two Twitch endpoints
// the tracker consumes: the oauth2 client-credentials exchange and the
// helix streams query.
//
// Error classification matters more than the requests themselves. Callers
// branch on three outcomes:
//
//   - ErrBadCredentials: the auth exchange rejected the client id/secret.
//     Fatal, never retried.
//   - IsTransient(err): connection failures, timeouts, and 5xx responses.
//     Worth a bounded retry.
//   - ErrInvalidPayload: the response decoded but lacked the expected shape
//     (an error key, or no data array). Reported and skipped for the cycle.
package twitch
