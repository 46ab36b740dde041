/*
Package reply holds the handful of shared types the rest of the module builds on:
sentinel errors, context keys, and the Environment an application runs in.

The interesting parts live in the subpackages.
[github.com/replykit/reply/http/resp] defines the Response variants a handler
can return from a single signature and the Responder that dispatches them.
[github.com/replykit/reply/http/session], [github.com/replykit/reply/http/template],
[github.com/replykit/reply/http/middleware] and [github.com/replykit/reply/http/router]
supply the session, template, middleware, and routing plumbing those variants
delegate to. [github.com/replykit/reply/http/req] parses and validates request
payloads before a handler decides its Response.
[github.com/replykit/reply/logger] provides leveled logging, and
[github.com/replykit/reply/app] composes the whole stack into a runnable
web application.
*/
package reply
