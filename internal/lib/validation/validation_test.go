package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

type applicationRequest struct {
	FullName      string   `json:"fullName" validate:"required"`
	CdlLicense    string   `json:"cdlLicense" validate:"required"`
	TruckTypes    []string `json:"truckTypes" validate:"required,min=1"`
	LongHaulTrips string   `json:"longHaulTrips" validate:"required,oneof=yes no"`
}

func TestNormalize_FieldMessages(t *testing.T) {
	t.Parallel()

	validate := New()

	err := validate.Struct(registerRequest{
		Email:    "not-an-email",
		Password: "abc",
	})
	require.Error(t, err)

	fields := Normalize(err)

	assert.Equal(t, "Please enter a valid email address", fields["email"])
	assert.Equal(t, "Password must be at least 5 characters long", fields["password"])
	assert.Equal(t, "Full name is required", fields["fullName"])
	assert.Equal(t, "Phone is required", fields["phone"])
}

func TestNormalize_UsesJSONFieldNames(t *testing.T) {
	t.Parallel()

	validate := New()

	err := validate.Struct(applicationRequest{
		FullName:      "John Smith",
		TruckTypes:    []string{"flatbed"},
		LongHaulTrips: "yes",
	})
	require.Error(t, err)

	fields := Normalize(err)

	require.Len(t, fields, 1)
	assert.Equal(t, "CDL license is required", fields["cdlLicense"])
}

func TestNormalize_EmptyTruckTypes(t *testing.T) {
	t.Parallel()

	validate := New()

	err := validate.Struct(applicationRequest{
		FullName:      "John Smith",
		CdlLicense:    "CDL-1",
		TruckTypes:    []string{},
		LongHaulTrips: "maybe",
	})
	require.Error(t, err)

	fields := Normalize(err)

	assert.Equal(t, "Truck types are required", fields["truckTypes"])
	assert.Equal(t, "longHaulTrips must be one of: yes no", fields["longHaulTrips"])
}

func TestNormalize_NonValidationInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize(errors.New("boom")))
}
