//go:build msgpack

package resp

import (
	"fmt"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

// msgpackBody marshals its payload with msgpack when dispatched.
type msgpackBody[T any] struct {
	payload T
}

// MsgPack responds with payload encoded as MessagePack.
//
// Compiled only under the "msgpack" build tag.
func MsgPack[T any](payload T) Response { return msgpackBody[T]{payload: payload} }

func (re msgpackBody[T]) respond(d *Responder, w http.ResponseWriter, _ *http.Request) error {
	b := d.buffer()
	defer d.release(b)

	if err := msgpack.NewEncoder(b).Encode(re.payload); err != nil {
		return fmt.Errorf("cannot encode payload: %w", err)
	}

	w.Header().Set("Content-Type", "application/msgpack")
	_, err := b.WriteTo(w)
	return err
}
