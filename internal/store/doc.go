// Package store defines the persistence interfaces of the application and
// the transaction helper shared by their implementations. Store interfaces
// accept and return domain types; the concrete SQLite implementations live
// in internal/platform/sqlite.
package store
