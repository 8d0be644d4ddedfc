// Package service contains the application layer of the token classification
// API. It sits between the HTTP handlers and the domain classifier: handlers
// hand it the decoded "data" value, and it runs the classifier, logs a
// structured summary through the request-scoped logger and converts any
// unexpected classifier failure into an error wrapping
// domain.ErrUnexpectedFailure.
//
// Services receive their dependencies through constructor injection and hold
// no state between calls.
package service
