// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - Auth: the editor gate. A PIN unlock issues a session token; mutating
//     routes require a valid token, read routes stay open (manager mode).
//   - RayID: generates a unique Request ID (RayID) for every incoming
//     request, injecting it into the context and response headers for
//     tracing.
package middleware
