package resp

import (
	"net/url"

	"github.com/replykit/reply/http/template"
	"github.com/replykit/reply/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithContactErrMsg sets the error message GenericErr flashes.
//
// We recommend using session.ContactUsErr as a template.
func WithContactErrMsg(msg string) func(*Responder) {
	return func(d *Responder) {
		d.contactErrMsg = msg
	}
}

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a default logger will be configured.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithParser sets the provided template.Parser for rendering the Template variant.
func WithParser(p template.Parser) func(*Responder) {
	return func(d *Responder) {
		d.parser = p
	}
}

// WithRootUrl sets the provided URL as the root URL,
// the fallback destination for Redirect variants without a target.
//
// If u cannot be parsed, the option does nothing.
func WithRootUrl(u string) func(*Responder) {
	return func(d *Responder) {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return
		}

		d.rootUrl = parsed
	}
}
