package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIPv4_Literais(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), "10.0.0.5")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", ip)

	_, err = lookupIPv4(context.Background(), "::1")
	assert.Error(t, err)
}

func TestWithIPv4Host(t *testing.T) {
	assert.Equal(t,
		"postgres://u:p@127.0.0.1:5432/armazem?sslmode=disable",
		withIPv4Host("postgres://u:p@127.0.0.1/armazem?sslmode=disable"))

	// IPv6 literal fica como está
	dsn := "postgres://u:p@[::1]:5432/armazem"
	assert.Equal(t, dsn, withIPv4Host(dsn))
}
