// Package database provides a shared SQLite connection.
//
// A Connection is created disconnected. Connect opens the database and
// assigns a session ID; Exec and Query fail with ErrNotConnected until then.
// Connect on a connected Connection and Disconnect on a disconnected one are
// no-ops.
//
// The connection string passed on first access of a Holder wins; later ones
// are ignored. The default is a shared-cache in-memory database.
package database
