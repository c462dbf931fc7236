package apiErrors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "erro de validação resolve para 400",
			err:      NewValidation("a data de início não pode ser posterior à data de fim"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "erro de recurso inexistente resolve para 404",
			err:      NewNotFound("GetCampaignAnalytics", "Campanha", "cmp_123"),
			expected: http.StatusNotFound,
		},
		{
			name:     "erro de conflito resolve para 409",
			err:      NewConflict("CreateInvoice", "fatura já emitida para a campanha", "cmp_123"),
			expected: http.StatusConflict,
		},
		{
			name:     "erro de agregação resolve para 500",
			err:      NewAggregation("activeCampaigns", "cmp_123", errors.New("sql: connection reset")),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "erro não estruturado resolve para 500",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "erro embrulhado preserva o código original",
			err:      errors.Wrap(NewNotFound("GetInvoice", "Fatura", "inv_1"), "usecase"),
			expected: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusCode(tc.err))
		})
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrInvalidRequest, CodeOf(NewValidation("dias deve ser maior que zero")))
	assert.Equal(t, ErrInternalServer, CodeOf(errors.New("boom")))
	assert.True(t, IsNotFound(NewNotFound("GetCampaign", "Campanha", "cmp_9")))
	assert.True(t, IsConflict(NewConflict("CreateInvoice", "fatura já emitida", "cmp_9")))
	assert.False(t, IsValidation(errors.New("boom")))
}

func TestAggregationErrorPreservaCausa(t *testing.T) {
	cause := errors.New("pq: deadlock detected")
	err := NewAggregation("emailStats", "cmp_1", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "cmp_1")
	assert.Contains(t, err.Error(), "deadlock")
}
