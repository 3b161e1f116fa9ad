package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClientValidatesConfig(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.EqualError(t, err, "DATABASE_URL configuration is required")

	_, err = NewClient(context.Background(), Config{DatabaseURL: "postgres://%zz"})
	assert.ErrorContains(t, err, "failed to parse database URL")
}
