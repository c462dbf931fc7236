package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest = "VAL_001" // Filtro ou parâmetro malformado

	// Erros de recurso (RES)
	ErrResourceNotFound = "RES_001" // Campanha/fatura/acionista inexistente
	ErrResourceConflict = "RES_002" // Recurso duplicado (ex: fatura já emitida)

	// Erros de agregação (AGG)
	ErrAggregationFailure = "AGG_001" // Falha inesperada ao computar uma métrica

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno não classificado
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrResourceNotFound:   http.StatusNotFound,
	ErrResourceConflict:   http.StatusConflict,
	ErrAggregationFailure: http.StatusInternalServerError,
	ErrInternalServer:     http.StatusInternalServerError,
}

// APIError é o erro estruturado que atravessa a camada de serviços. Além do
// código e da mensagem ele carrega a operação e o identificador da entidade
// envolvida, para que o log e a resposta não dependam de interpolação de
// strings soltas.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Operation string `json:"operation,omitempty"`
	EntityID  string `json:"entityId,omitempty"`
	Err       error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}

	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewNotFound cria um erro de recurso inexistente com o id na mensagem
func NewNotFound(operation, resource, id string) *APIError {
	return &APIError{
		Code:      ErrResourceNotFound,
		Message:   fmt.Sprintf("%s com ID %s não encontrada", resource, id),
		Operation: operation,
		EntityID:  id,
	}
}

// NewValidation cria um erro de entrada malformada
func NewValidation(message string) *APIError {
	return &APIError{
		Code:    ErrInvalidRequest,
		Message: message,
	}
}

// NewConflict cria um erro de recurso duplicado
func NewConflict(operation, message, id string) *APIError {
	return &APIError{
		Code:      ErrResourceConflict,
		Message:   message,
		Operation: operation,
		EntityID:  id,
	}
}

// NewAggregation embrulha uma falha inesperada de consulta/agregação com a
// operação e, quando houver, o id da campanha envolvida
func NewAggregation(operation, campaignID string, err error) *APIError {
	message := fmt.Sprintf("falha ao computar %s", operation)
	if campaignID != "" {
		message = fmt.Sprintf("falha ao computar %s para a campanha %s", operation, campaignID)
	}

	return &APIError{
		Code:      ErrAggregationFailure,
		Message:   message,
		Operation: operation,
		EntityID:  campaignID,
		Err:       err,
	}
}

// StatusCode resolve o status HTTP de qualquer erro; erros não estruturados
// caem em 500
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if status, ok := httpStatusMap[apiErr.Code]; ok {
			return status
		}
	}

	return http.StatusInternalServerError
}

// CodeOf resolve o código da API de qualquer erro
func CodeOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}

	return ErrInternalServer
}

// IsNotFound informa se o erro representa um recurso inexistente
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrResourceNotFound
}

// IsValidation informa se o erro representa uma entrada malformada
func IsValidation(err error) bool {
	return CodeOf(err) == ErrInvalidRequest
}

// IsConflict informa se o erro representa um recurso duplicado
func IsConflict(err error) bool {
	return CodeOf(err) == ErrResourceConflict
}
