package domain_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		Name:       "Test Customer",
		Email:      "customer@example.com",
		Phone:      "+79991234567",
		Address:    "Lenina st. 1",
		City:       "Moscow",
		PostalCode: "101000",
		Shipping:   domain.ShippingStandard,
	}
}

func TestCheckoutFormValidate(t *testing.T) {
	t.Run("ValidForm", func(t *testing.T) {
		assert.Nil(t, validForm().Validate())
	})

	t.Run("MissingRequiredFields", func(t *testing.T) {
		fields := domain.CheckoutForm{}.Validate()
		require.NotNil(t, fields)

		for _, name := range []string{
			"Name", "Email", "Phone", "Address", "City", "PostalCode",
		} {
			assert.Contains(t, fields, name)
			assert.Equal(t, "is required", fields[name])
		}
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		f := validForm()
		f.Email = "not-an-email"
		fields := f.Validate()

		require.NotNil(t, fields)
		assert.Equal(t, "must be a valid email address", fields["Email"])
		assert.NotContains(t, fields, "Name")
	})

	t.Run("InvalidPhone", func(t *testing.T) {
		f := validForm()
		f.Phone = "555-1234"
		fields := f.Validate()

		require.NotNil(t, fields)
		assert.Contains(t, fields, "Phone")
	})

	t.Run("TooShortValues", func(t *testing.T) {
		f := validForm()
		f.Name = "X"
		f.PostalCode = "1"
		fields := f.Validate()

		require.NotNil(t, fields)
		assert.Equal(t, "is too short", fields["Name"])
		assert.Equal(t, "is too short", fields["PostalCode"])
	})
}
