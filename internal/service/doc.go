// Package service provides application-level services for managing
// vocabulary, reviews, study sessions, pronunciation audio, and device sync.
// Services orchestrate the domain layer and the stores; anything that
// touches more than one store runs inside a single transaction.
package service
