// Package decorate wraps functions in layers of middleware.
//
// A Func takes a context and one argument and returns a result or an error.
// A Middleware turns a Func into another Func with the same signature, so
// middlewares nest just like the wrappers in package coffee:
//
//	fib = decorate.Chain(fibonacci,
//		decorate.Logged[int, int](logger, "fibonacci"),
//		decorate.Timed[int, int]("fibonacci", report),
//		decorate.Cached[int, int](logger, "fibonacci"),
//	)
//
// Chain applies middlewares outermost first: the first middleware sees the
// call before every other one.
package decorate
