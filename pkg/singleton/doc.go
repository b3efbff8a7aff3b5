// Package singleton provides Holder, a lazily initialized slot that holds
// at most one instance of a type.
//
// The first call to Get builds the instance, using the parameters passed to
// that call or the holder's defaults. Every later call returns the same
// pointer and ignores its parameters. Construction runs under sync.Once, so
// concurrent first access from many goroutines still builds exactly once.
//
// A Holder is an ordinary value. Pass it to the code that needs it instead of
// reaching for a package-level variable; packages that want a process-wide
// instance keep one shared Holder and expose it through a function.
package singleton
