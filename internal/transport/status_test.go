package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mulabs/usbcc/internal/transport"
)

func TestStatusText(t *testing.T) {
	assert.Equal(t, "success", transport.StatusText(transport.StatusSuccess))
	assert.Equal(t, "operation timed out", transport.StatusText(transport.StatusErrorTimeout))
	assert.Equal(t, "other error", transport.StatusText(transport.StatusErrorOther))
	assert.Equal(t, "unknown error", transport.StatusText(-42))
}
