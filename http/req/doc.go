/*
Package req provides ergonomics for handling an HTTP request.

Package req provides a helper for parsing payloads in an HTTP request.
It supports JSON-encoded payloads and payloads encoded in query parameters.
In both cases, package req expects to parse payloads into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the payload to fields on the struct.
Second, for validating the payload's data meets requirements.

By leveraging req, handlers can get data out of an HTTP request into application
specific structs before deciding which [resp.Response] variant to answer with.
The parade of errors that may propagate from parsing are translated to reply
sentinel errors in order to provide a consistent interface for issues that arise
across encoding types; a ValidationErrors additionally renders itself as a
Response via its Response method.
*/
package req
