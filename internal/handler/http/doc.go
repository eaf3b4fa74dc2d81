// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, role-based
// authorization, request tracing and access logging are handled in this
// package before requests are delegated to the service layer.
//
// Every endpoint answers with the uniform envelope
// {"success":bool,"message":string,"data":...}: handled failures carry
// success=false with HTTP 400, authentication failures 401, authorization
// failures 403, and the search proxy's upstream failures 500.
package http
