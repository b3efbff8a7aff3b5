// Package applog is a leveled application logger meant to be shared.
//
// Levels are ordered DEBUG < INFO < WARNING < ERROR < CRITICAL. Messages
// below the logger's level are dropped. Accepted messages are numbered,
// kept in memory (see Entries) and written through zerolog.
//
// Like the other shared components, a Logger comes from a singleton Holder:
// NewHolder for an injectable one, Shared for the process-wide one. The
// level and file passed on first access win.
package applog
