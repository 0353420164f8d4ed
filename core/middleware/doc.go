// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header) protecting the invocation endpoints.
//   - rayid: assigns a RayID to every request, reusing an inbound X-Ray-ID header when
//     the orchestrator sends one, and echoes it in the response.
package middleware
