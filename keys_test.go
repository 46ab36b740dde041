package reply_test

import (
	"testing"

	"github.com/replykit/reply"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	require.Equal(t, "SessionKey", reply.SessionKey.Key())
	require.Equal(t, "reply context key: SessionKey", reply.SessionKey.String())
}
