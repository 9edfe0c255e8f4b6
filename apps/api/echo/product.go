package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/cantina/core/product"
)

type productApi struct {
	svc      *product.Service
	validate *validator.Validate
}

func registerProductAPI(g *echo.Group, svc *product.Service, validate *validator.Validate) {
	api := productApi{svc: svc, validate: validate}

	pg := g.Group("/products")
	pg.GET("", api.query)
	pg.POST("", api.create)
	pg.GET("/categories", api.queryCategories)
	pg.GET("/:id", api.retrieve)
	pg.PUT("/:id", api.update)
	pg.DELETE("/:id", api.destroy)
}

func (api *productApi) query(ctx echo.Context) error {
	products, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying products")
	}
	return ctx.JSON(http.StatusOK, products)
}

func (api *productApi) queryCategories(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, product.Categories)
}

func (api *productApi) create(ctx echo.Context) error {
	var data product.NewProduct
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewProduct")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	prod, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating product")
	}
	return ctx.JSON(http.StatusCreated, prod)
}

func (api *productApi) retrieve(ctx echo.Context) error {
	prod, err := api.svc.GetByID(intParam(ctx, "id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prod)
}

func (api *productApi) update(ctx echo.Context) error {
	prod, err := api.svc.GetByID(intParam(ctx, "id"))
	if err != nil {
		return err
	}

	var data product.UpdateProduct
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProduct")
	}
	if err := data.Validate(prod, api.validate); err != nil {
		return err
	}

	prod, err = api.svc.Update(prod.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating product")
	}
	return ctx.JSON(http.StatusOK, prod)
}

func (api *productApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(intParam(ctx, "id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
