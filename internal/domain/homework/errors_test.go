package homework

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"configuration", ConfigurationError(errors.New("TELEGRAM_TOKEN is not set")), KindConfiguration},
		{"transport", TransportError("request failed", cause), KindTransport},
		{"endpoint", EndpointError(404), KindEndpoint},
		{"schema", SchemaError("missing %q", "homeworks"), KindSchema},
		{"unknown status", UnknownStatusError("new"), KindUnknownStatus},
		{"delivery", DeliveryError(cause), KindDelivery},
		{"wrapped", fmt.Errorf("fetch: %w", EndpointError(500)), KindEndpoint},
		{"plain", cause, KindOther},
		{"nil", nil, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(fmt.Errorf("x: %w", SchemaError("bad")), KindSchema))
	assert.False(t, IsKind(SchemaError("bad"), KindUnknownStatus))
	assert.False(t, IsKind(nil, KindOther))
}

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := TransportError("failed to decode response", cause)

	assert.Equal(t, "failed to decode response: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)

	endpoint := EndpointError(503)
	assert.Equal(t, 503, endpoint.StatusCode)
	assert.Equal(t, "endpoint returned status 503", endpoint.Error())
}
