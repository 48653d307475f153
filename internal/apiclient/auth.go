package apiclient

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	Password2   string `json:"password2,omitempty"`
	ProfileType string `json:"profile_type"`
	City        string `json:"city"`
}

// ProfileInput vai como multipart; campos vazios não são enviados.
type ProfileInput struct {
	Username string `json:"username" form:"username"`
	Whatsapp string `json:"whatsapp" form:"whatsapp"`
	PixKey   string `json:"pix_key" form:"pix_key"`
	Address  string `json:"address" form:"address"`
	City     string `json:"city" form:"city"`

	Avatar *models.Upload `json:"-" form:"-"`
}

func (c *Client) Login(ctx context.Context, in LoginInput) (*models.AuthResult, error) {
	var out models.AuthResult
	err := c.do(ctx, request{
		op:       "login",
		method:   http.MethodPost,
		path:     "/auth/login/",
		body:     in,
		fallback: "Credenciais inválidas",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (*models.AuthResult, error) {
	var out models.AuthResult
	err := c.do(ctx, request{
		op:       "register",
		method:   http.MethodPost,
		path:     "/auth/register/",
		body:     in,
		fallback: "Erro desconhecido",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, request{
		op:       "logout",
		method:   http.MethodPost,
		path:     "/auth/logout/",
		token:    token,
		auth:     true,
		fallback: "Erro ao sair",
	}, nil)
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, request{
		op:       "password_reset",
		method:   http.MethodPost,
		path:     "/auth/password-reset/",
		body:     map[string]string{"email": email},
		fallback: "Erro ao enviar email de recuperação",
	}, nil)
}

func (c *Client) ConfirmPasswordReset(ctx context.Context, uid, resetToken, newPassword string) error {
	return c.do(ctx, request{
		op:     "password_reset_confirm",
		method: http.MethodPost,
		path:   "/auth/password-reset/confirm/",
		body: map[string]string{
			"uid":          uid,
			"token":        resetToken,
			"new_password": newPassword,
		},
		fallback: "Erro ao redefinir senha",
	}, nil)
}

func (c *Client) GetProfile(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	err := c.do(ctx, request{
		op:       "get_profile",
		method:   http.MethodGet,
		path:     "/auth/profile/",
		token:    token,
		auth:     true,
		fallback: "Erro ao obter perfil",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, in ProfileInput) (*models.User, error) {
	form := &formBody{file: in.Avatar}
	form.setIfNotEmpty("username", in.Username)
	form.setIfNotEmpty("whatsapp", in.Whatsapp)
	form.setIfNotEmpty("pix_key", in.PixKey)
	form.setIfNotEmpty("address", in.Address)
	form.setIfNotEmpty("city", in.City)

	var out models.User
	err := c.do(ctx, request{
		op:       "update_profile",
		method:   http.MethodPatch,
		path:     "/auth/profile/",
		token:    token,
		auth:     true,
		form:     form,
		fallback: "Erro desconhecido",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitRating(ctx context.Context, token string, r models.Rating) error {
	return c.do(ctx, request{
		op:       "submit_rating",
		method:   http.MethodPost,
		path:     "/auth/ratings/",
		token:    token,
		auth:     true,
		body:     r,
		fallback: "Erro ao enviar avaliação",
	}, nil)
}
