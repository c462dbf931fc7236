package domain

// Response é o envelope padrão de todas as respostas da API
type Response struct {
	Status     bool        `json:"status"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Error      string      `json:"error,omitempty"`
}
