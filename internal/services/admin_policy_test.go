package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"decoyauction/internal/domain"
	"decoyauction/internal/services"
)

func TestAllowlistPolicy(t *testing.T) {
	isAdmin := services.NewAllowlistPolicy([]string{"rich@decoyauction.test", " Osahara@decoyauction.test "})

	require.True(t, isAdmin(&domain.User{Email: "rich@decoyauction.test"}))
	require.True(t, isAdmin(&domain.User{Email: "OSAHARA@decoyauction.test"}), "comparison is case-insensitive")
	require.False(t, isAdmin(&domain.User{Email: "x@y.com"}), "authenticated is not authorized")
	require.False(t, isAdmin(nil))
}
