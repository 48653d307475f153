package models

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice é o toast que a tela mostra depois de uma ação.
type Notice struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func SuccessNotice(title string) Notice {
	return Notice{Kind: NoticeSuccess, Title: title}
}

func ErrorNotice(title, description string) Notice {
	return Notice{Kind: NoticeError, Title: title, Description: description}
}
