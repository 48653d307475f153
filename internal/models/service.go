package models

type Service struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Image       string `json:"image,omitempty"`
}

// ServiceInput é o formulário de criação/edição (enviado como multipart).
type ServiceInput struct {
	Name        string
	Description string
	Price       Money
	Image       *Upload
}

// Upload é um arquivo já normalizado, pronto para ir no multipart.
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}
