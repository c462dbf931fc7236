package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// respond escreve o envelope padrão de sucesso
func respond(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := domain.Response{
		Status:     true,
		StatusCode: statusCode,
		Message:    "success",
		Data:       data,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
	}
}

// respondError traduz o erro para o envelope padrão usando o código HTTP
// derivado do tipo do erro
func respondError(w http.ResponseWriter, err error) {
	statusCode := apiErrors.StatusCode(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := domain.Response{
		Status:     false,
		StatusCode: statusCode,
		Message:    err.Error(),
		Error:      apiErrors.CodeOf(err),
	}

	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		logrus.WithError(encodeErr).Error("Erro ao serializar resposta de erro")
	}
}
