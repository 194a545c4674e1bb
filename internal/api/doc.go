// Package api is the HTTP client for the licensing backend.
//
// Every endpoint answers with a JSON envelope of the form
// {"success": bool, "message": string, ...payload}. The client turns the
// three ways a call can go wrong into distinct errors:
//
//   - *TransportError: the request never produced a usable response
//     (network failure, cancelled context, undecodable body).
//   - *BusinessError: the backend answered but reported failure
//     (success:false, or a non-2xx status other than 401).
//   - ErrUnauthorized: the backend answered 401. The token source is told to
//     discard the token before the error is returned.
package api
