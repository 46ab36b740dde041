/*
Package router registers routes whose handlers answer with a [resp.Response].

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
A [resp.HandlerFunc] is the function called when a request matches a Route;
the [resp.Response] it returns is rendered by the [*resp.Responder] the Router encloses.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

It is often the case that many routes for a web server share identical middleware stacks,
which aid in directing, redirecting, or adding contextual information to a request.
Thus, a [Router] provides conveniences for making a single call to register many
logically associated Routes, along with an every-request middleware stack.

[Router] utilizes [mux.Router] for its implementation,
and so functions as a thin wrapper around that package.
*/
package router
