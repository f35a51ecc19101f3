package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidForm = errors.New("invalid checkout form")

// A FormError carries the field-specific validation messages.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	return ErrInvalidForm.Error()
}

func (e *FormError) Unwrap() error {
	return ErrInvalidForm
}

var formValidate = validator.New(validator.WithRequiredStructEnabled())

// A CheckoutForm carries the customer input for placing an order.
// Coupon and shipping method feed the pricing quote.
type CheckoutForm struct {
	Name       string `validate:"required,min=2"`
	Email      string `validate:"required,email"`
	Phone      string `validate:"required,e164"`
	Address    string `validate:"required,min=5"`
	City       string `validate:"required"`
	PostalCode string `validate:"required,min=3,max=10"`
	Shipping   ShippingMethod
	CouponCode string
}

// Validate reports field-specific messages keyed by field name.
// A nil map means the form is valid.
func (f CheckoutForm) Validate() map[string]string {
	err := formValidate.Struct(f)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return map[string]string{"form": err.Error()}
	}

	fields := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "e164":
		return "must be a phone number in international format"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	}
	return "is invalid"
}
