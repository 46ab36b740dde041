/*
The middleware package defines what a middleware is in reply and a set of basic middlewares.

The available middlewares are:
  - CORS
  - Idempotent
  - InjectIPAddress
  - InjectSession
  - LogRequest
  - RateLimit
  - ReportPanic
  - RequestID

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.InjectIPAddress(),
		middleware.RateLimit(responder, vs),
		middleware.RequestID(),
		middleware.LogRequest(log),
		middleware.InjectSession(sessionStore),
	}
*/
package middleware
