package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingForm struct {
	Name string `validate:"required,min=3"`
	CPF  string `validate:"required,cpf"`
}

func TestValidateCPFTag(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&bookingForm{Name: "Ana Souza", CPF: "529.982.247-25"}))
	assert.NoError(t, v.Validate(&bookingForm{Name: "Ana Souza", CPF: "52998224725"}))

	err := v.Validate(&bookingForm{Name: "Ana Souza", CPF: "111.111.111-11"})
	assert.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, "CPF must be a valid CPF", fields["CPF"])
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&bookingForm{Name: "An", CPF: ""})
	assert.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, "Name must be at least 3 characters", fields["Name"])
	assert.Equal(t, "CPF is required", fields["CPF"])
}
