package fluentlogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClientRequiresTagPrefix(t *testing.T) {
	_, err := NewClient(Config{Host: "127.0.0.1", Port: 24224})
	assert.Error(t, err)
}
