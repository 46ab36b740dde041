package session

import (
	"net/http"
)

const (
	// Default Flash classes
	FlashError   = "error"
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashWarning = "warning"

	// Default Flash messages
	BadCredsMsg   = "Hmm... check those credentials."
	BadInputMsg   = "Hmm... check your form, something isn't correct."
	DefaultErrMsg = "Uh oh! We've run into an issue."
	NoAccessMsg   = "Oops, sending you back somewhere safe."
)

var ContactUsErr = DefaultErrMsg + " Please contact us at %s if the issue persists."

// The FlashSessionable wraps methods for setting and draining
// one-shot messages on a session.
type FlashSessionable interface {
	Flashes(w http.ResponseWriter, r *http.Request) []Flash
	SetFlash(w http.ResponseWriter, r *http.Request, flash Flash) error
}

// A Flash is a one-shot message stored in a session alongside a redirect,
// read and discarded by the next request.
type Flash struct {
	Class string `json:"class"`
	Msg   string `json:"msg"`
}
