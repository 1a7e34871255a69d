package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse resposta simples com mensagem (ex.: eliminações).
type MessageResponse struct {
	Message string `json:"message"`
}

// ListQuery filtro de listagens: Q faz correspondência sem acentos nos campos de texto principais.
type ListQuery struct {
	Q string `query:"q"`
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func stringOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
