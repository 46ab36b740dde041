//go:build msgpack

package resp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/replykit/reply/http/resp"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestMsgPack(t *testing.T) {
	// Arrange
	type widget struct {
		ID   int    `msgpack:"id"`
		Name string `msgpack:"name"`
	}

	d := resp.NewResponder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()

	expected := widget{ID: 8, Name: "sprocket"}

	// Act
	err := d.Respond(w, r, resp.MsgPack(expected))

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/msgpack", w.Header().Get("Content-Type"))

	var actual widget
	require.Nil(t, msgpack.Unmarshal(w.Body.Bytes(), &actual))
	require.Equal(t, expected, actual)
}
