package validators

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rewear-app/backend/internal/api/types"
	appErr "github.com/rewear-app/backend/pkg/errors"
)

func TestCheckValid(t *testing.T) {
	req := types.RegisterRequest{
		Email:     "user@example.com",
		Username:  "user",
		Password:  "longenough",
		Password2: "longenough",
	}
	require.NoError(t, Check(&req))
}

func TestCheckFieldKeyedErrors(t *testing.T) {
	req := types.RegisterRequest{Email: "not-an-email", Password: "x"}
	err := Check(&req)
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	ae, ok := err.(*appErr.AppError)
	require.True(t, ok)
	// field keys come from json tags, not Go struct names
	require.Contains(t, ae.Fields, "email")
	require.Contains(t, ae.Fields, "username")
	require.Contains(t, ae.Fields, "password2")
	require.Equal(t, "Enter a valid email address.", ae.Fields["email"])
	require.Equal(t, "This field is required.", ae.Fields["username"])
}

func TestCheckOneofMessage(t *testing.T) {
	req := types.CreateItemRequest{ItemName: "Coat", CategoryID: 1, Condition: "shredded"}
	err := Check(&req)
	require.Error(t, err)
	ae, ok := err.(*appErr.AppError)
	require.True(t, ok)
	require.Contains(t, ae.Fields["condition"], "Must be one of:")
}
