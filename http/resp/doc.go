/*
Package resp lets an HTTP handler return one of many kinds of response
from a single function signature.

A [HandlerFunc] returns a [Response], which is one of a closed set of
variants: plain text, HTML, a redirect, a redirect carrying a one-shot
flash message, a status code with an optional message, a file, JSON, and
so on. Which concrete response gets written is decided at runtime by
whichever variant the handler constructed.

A [Responder] holds the application-wide pieces dispatching needs - a
logger, a template parser, the root URL - and consumes each Response
exactly once:

	d := resp.NewResponder(resp.WithRootUrl("https://example.com"))

	mux.Handle("/profile/{id}", d.Handler(func(r *http.Request) resp.Response {
		user, err := lookup(r)
		switch {
		case errors.Is(err, errNotFound):
			return resp.NotFound("no such user")
		case err != nil:
			return resp.GenericErr(err)
		case !user.Active:
			return resp.FlashRedirect("/", session.Flash{Class: session.FlashError, Msg: "account disabled"})
		}

		return resp.JSON(user)
	}))

Variants add no behavior of their own; each delegates to the underlying
net/http, encoding, session, or template machinery and propagates its
failures unchanged.

Two variants are compiled only under build tags: MsgPack under "msgpack"
and Template under "templates".
*/
package resp
