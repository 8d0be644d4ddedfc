// Package domain contains the core entities of the token classification API:
// the classification result snapshot, the classifier policies and the
// sentinel errors shared by the service and transport layers. It has no
// dependencies on infrastructure or delivery mechanisms.
package domain
