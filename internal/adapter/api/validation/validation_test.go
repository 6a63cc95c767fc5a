package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Phase   string `validate:"phase"`
	Channel string `validate:"channel"`
	Type    string `validate:"product_type"`
	Payment string `validate:"payment_status"`
	Status  string `validate:"touchpoint_status"`
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	valid := sample{Phase: "retention", Channel: "line", Type: "tangible", Payment: "Paid", Status: "sent"}
	assert.NoError(t, v.Struct(valid))

	tests := []struct {
		name   string
		mutate func(s *sample)
		field  string
	}{
		{"fase", func(s *sample) { s.Phase = "renewal" }, "Phase"},
		{"canal", func(s *sample) { s.Channel = "fax" }, "Channel"},
		{"tipo", func(s *sample) { s.Type = "digital" }, "Type"},
		{"pagamento", func(s *sample) { s.Payment = "paid" }, "Payment"},
		{"status", func(s *sample) { s.Status = "done" }, "Status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := v.Struct(s)
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.field, errs[0].Field())
		})
	}
}

func TestRegister(t *testing.T) {
	assert.NoError(t, Register())
}
