// Package api defines the request and response messages of the travelbuddy
// RPC services. Messages travel as JSON over the Connect protocol; see
// package apiconnect for the service bindings.
//
// Fields tagged with validate are checked by the server before a request
// reaches the travel core.
package api
