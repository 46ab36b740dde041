package middleware_test

import (
	"fmt"
	"testing"

	"github.com/replykit/reply/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	// Arrange + Act
	actual := middleware.CORS("")

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange + Act
	actual = middleware.CORS("https://example.com")

	// Assert
	require.NotEqual(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))
}
