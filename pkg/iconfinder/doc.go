// Package iconfinder is a thin client for the Iconfinder v4 REST API.
//
// Every method maps to exactly one GET request. Optional filters are sent
// only when they hold a non-zero value, so the zero value of a parameter
// struct always means "let the API decide". Values are placed into the URL
// as given; callers pass identifiers and filters that are already URL-safe.
//
// Responses are decoded into a Document and returned unchanged. The HTTP
// status code is not interpreted: an error payload from the API comes back
// as a regular Document and callers inspect it themselves.
package iconfinder
