package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/cantina/core/notif"
	"github.com/trezcool/cantina/core/sale"
)

type (
	saleApi struct {
		svc      *sale.Service
		validate *validator.Validate
	}

	saleResponse struct {
		Sale          sale.Sale      `json:"sale"`
		Notifications []notif.Result `json:"notifications,omitempty"`
	}
)

func registerSaleAPI(g *echo.Group, svc *sale.Service, validate *validator.Validate) {
	api := saleApi{svc: svc, validate: validate}

	sg := g.Group("/sales")
	sg.GET("", api.query)
	sg.POST("", api.create)
}

func (api *saleApi) query(ctx echo.Context) error {
	sales, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying sales")
	}
	return ctx.JSON(http.StatusOK, sales)
}

func (api *saleApi) create(ctx echo.Context) error {
	var data sale.NewSale
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSale")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	s, results, err := api.svc.Register(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, saleResponse{Sale: s, Notifications: results})
}
