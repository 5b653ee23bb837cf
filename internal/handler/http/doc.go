// Package http implements the admin REST API of the credential pool.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging, response
// compression, and request deadlines are handled in this package before
// requests are delegated to the service layer.
package http
