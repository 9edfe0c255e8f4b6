package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/cantina/core/guardian"
)

type guardianApi struct {
	svc      *guardian.Service
	validate *validator.Validate
}

func registerGuardianAPI(g *echo.Group, svc *guardian.Service, validate *validator.Validate) {
	api := guardianApi{svc: svc, validate: validate}

	gg := g.Group("/guardians")
	gg.GET("", api.query)
	gg.POST("", api.create)
	gg.GET("/:id", api.retrieve)
	gg.PUT("/:id", api.update)
	gg.DELETE("/:id", api.destroy)
}

func (api *guardianApi) query(ctx echo.Context) error {
	guardians, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying guardians")
	}
	return ctx.JSON(http.StatusOK, guardians)
}

func (api *guardianApi) create(ctx echo.Context) error {
	var data guardian.NewGuardian
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGuardian")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	grd, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating guardian")
	}
	return ctx.JSON(http.StatusCreated, grd)
}

func (api *guardianApi) retrieve(ctx echo.Context) error {
	grd, err := api.svc.GetByID(intParam(ctx, "id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grd)
}

func (api *guardianApi) update(ctx echo.Context) error {
	grd, err := api.svc.GetByID(intParam(ctx, "id"))
	if err != nil {
		return err
	}

	var data guardian.UpdateGuardian
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateGuardian")
	}
	if err := data.Validate(grd, api.validate); err != nil {
		return err
	}

	grd, err = api.svc.Update(grd.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating guardian")
	}
	return ctx.JSON(http.StatusOK, grd)
}

func (api *guardianApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(intParam(ctx, "id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
