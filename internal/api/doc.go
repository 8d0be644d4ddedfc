// Package api handles incoming HTTP requests, request validation and
// response formatting for the token classification endpoint. It acts as an
// adapter between HTTP clients and the classification service, translating
// malformed bodies, missing data and unexpected failures into structured
// JSON error responses that carry the configured identity fields.
package api
