// Package sqlite provides the SQLite implementations of the store
// interfaces, plus connection setup and embedded schema migrations. A single
// database file holds the entire state of one device, which is what makes
// snapshot export and import a natural whole-store operation.
package sqlite
