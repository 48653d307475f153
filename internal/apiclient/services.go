package apiclient

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

func (c *Client) ListOwnServices(ctx context.Context, token string) ([]models.Service, error) {
	var out []models.Service
	err := c.do(ctx, request{
		op:       "list_services",
		method:   http.MethodGet,
		path:     "/services/",
		token:    token,
		auth:     true,
		fallback: "Erro ao buscar serviços",
	}, &out)
	return out, err
}

func (c *Client) GetService(ctx context.Context, token string, id uint) (*models.Service, error) {
	var out models.Service
	err := c.do(ctx, request{
		op:       "get_service",
		method:   http.MethodGet,
		path:     idPath("/services/%d/", id),
		token:    token,
		auth:     true,
		fallback: "Serviço não encontrado",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateService(ctx context.Context, token string, in models.ServiceInput) (*models.Service, error) {
	var out models.Service
	err := c.do(ctx, request{
		op:       "create_service",
		method:   http.MethodPost,
		path:     "/services/",
		token:    token,
		auth:     true,
		form:     serviceForm(in),
		fallback: "Erro ao criar serviço",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, token string, id uint, in models.ServiceInput) (*models.Service, error) {
	var out models.Service
	err := c.do(ctx, request{
		op:       "update_service",
		method:   http.MethodPut,
		path:     idPath("/services/%d/", id),
		token:    token,
		auth:     true,
		form:     serviceForm(in),
		fallback: "Erro ao atualizar serviço",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, token string, id uint) error {
	return c.do(ctx, request{
		op:       "delete_service",
		method:   http.MethodDelete,
		path:     idPath("/services/%d/", id),
		token:    token,
		auth:     true,
		fallback: "Erro ao excluir serviço",
	}, nil)
}

func serviceForm(in models.ServiceInput) *formBody {
	form := &formBody{file: in.Image}
	form.set("name", in.Name)
	form.set("description", in.Description)
	form.set("price", in.Price.Decimal())
	return form
}
