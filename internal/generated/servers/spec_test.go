package servers_test

import (
	"testing"

	"pancakelab/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()

	require.NoError(t, err)
	assert.Equal(t, "Pancake Lab", swagger.Info.Title)
	require.Len(t, swagger.Servers, 1)
	assert.Equal(t, "/api/v1", swagger.Servers[0].URL)

	for _, path := range []string{
		"/orders",
		"/orders/{orderId}/pancakes",
		"/orders/{orderId}/pancakes/removal",
		"/orders/{orderId}/complete",
		"/orders/{orderId}/prepare",
		"/orders/{orderId}/cancel",
		"/orders/{orderId}/deliver",
		"/orders/{orderId}/events",
		"/events",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
}
