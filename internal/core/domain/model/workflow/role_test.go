package workflow_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected workflow.Role
	}{
		{"exact_customer", "Customer", workflow.RoleCustomer},
		{"lowercase_dispatcher", "dispatcher", workflow.RoleDispatcher},
		{"uppercase_driver", "DRIVER", workflow.RoleDriver},
		{"mixed_case", "cUsToMeR", workflow.RoleCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := workflow.RoleFromString(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
		})
	}

	t.Run("unknown_role_returns_validation_error", func(t *testing.T) {
		role, err := workflow.RoleFromString("Admin")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, workflow.RoleUnknown, role)
	})
}

func TestRole_Validate(t *testing.T) {
	for _, role := range workflow.AllRoles() {
		require.NoError(t, role.Validate())
	}

	require.ErrorIs(t, workflow.RoleUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, workflow.Role(42).Validate(), errs.ErrValueIsInvalid)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Customer", workflow.RoleCustomer.String())
	assert.Equal(t, "Dispatcher", workflow.RoleDispatcher.String())
	assert.Equal(t, "Driver", workflow.RoleDriver.String())
	assert.Equal(t, "Unknown", workflow.Role(42).String())
}

func TestCategoryFromString(t *testing.T) {
	t.Run("valid_categories", func(t *testing.T) {
		for name, expected := range map[string]workflow.StatusCategory{
			"ORDER":    workflow.CategoryOrder,
			"PAYMENT":  workflow.CategoryPayment,
			"DELIVERY": workflow.CategoryDelivery,
		} {
			category, err := workflow.CategoryFromString(name)
			require.NoError(t, err)
			assert.Equal(t, expected, category)
		}
	})

	t.Run("category_names_are_case_sensitive", func(t *testing.T) {
		_, err := workflow.CategoryFromString("order")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
