// Package gateway is the single door between the client and the dpbr REST
// backend.
//
// A Gateway turns an endpoint path plus request options into a Response
// envelope. It resolves the absolute URL from configuration, attaches the
// bearer token, bounds every call with the configured timeout and folds
// every failure (transport, timeout, HTTP status, undecodable body) into the
// envelope. Only New can fail; Call and Do never return a Go error and never
// panic.
//
// Error text policy: the server's detail/message string is shown only for
// 4xx responses with a JSON body. Everything else reports the status text.
package gateway
