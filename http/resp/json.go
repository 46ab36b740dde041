package resp

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// jsonBody marshals its payload when dispatched.
type jsonBody[T any] struct {
	payload T
}

// JSON responds with payload encoded by encoding/json.
//
// The payload is prerendered into a pooled buffer, so an encoding failure
// surfaces as an error from Respond instead of a half-written body.
func JSON[T any](payload T) Response { return jsonBody[T]{payload: payload} }

func (re jsonBody[T]) respond(d *Responder, w http.ResponseWriter, _ *http.Request) error {
	b := d.buffer()
	defer d.release(b)

	if err := json.NewEncoder(b).Encode(re.payload); err != nil {
		return fmt.Errorf("cannot encode payload: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	_, err := b.WriteTo(w)
	return err
}
