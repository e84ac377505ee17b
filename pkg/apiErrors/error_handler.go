package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados pela API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidCSV          = "VAL_004" // Arquivo CSV inválido
	ErrMethodNotAllowed    = "VAL_005" // Método não permitido na rota

	// Erros de recurso (3000-3999)
	ErrEntryNotFound        = "RES_001" // Registro diário não encontrado
	ErrProductNotFound      = "RES_002" // Produto não encontrado
	ErrVariantNotFound      = "RES_003" // Variante não encontrada
	ErrProductAlreadyExists = "RES_004" // Produto já cadastrado
	ErrRouteNotFound        = "RES_005" // Rota inexistente

	// Erros de sincronização (4000-4999)
	ErrSyncAlreadyRunning = "SYNC_001" // Sincronização já em andamento
	ErrUnknownCronType    = "SYNC_002" // Tipo de cron desconhecido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrInvalidCSV:           http.StatusBadRequest,
	ErrMethodNotAllowed:     http.StatusMethodNotAllowed,
	ErrEntryNotFound:        http.StatusNotFound,
	ErrProductNotFound:      http.StatusNotFound,
	ErrVariantNotFound:      http.StatusNotFound,
	ErrProductAlreadyExists: http.StatusConflict,
	ErrRouteNotFound:        http.StatusNotFound,
	ErrSyncAlreadyRunning:   http.StatusConflict,
	ErrUnknownCronType:      http.StatusBadRequest,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrDatabaseOperation:    http.StatusInternalServerError,
	ErrExternalService:      http.StatusBadGateway,
	ErrCommunication:        http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusCode retorna o status HTTP de um código de erro
func StatusCode(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
