package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/cantina/core/notif"
)

type notifConfigApi struct {
	store    notif.ConfigStore
	validate *validator.Validate
}

func registerNotifConfigAPI(g *echo.Group, store notif.ConfigStore, validate *validator.Validate) {
	api := notifConfigApi{store: store, validate: validate}

	ng := g.Group("/notifications/config")
	ng.GET("", api.retrieve)
	ng.PUT("", api.update)
	ng.POST("/reset", api.reset)
}

func (api *notifConfigApi) retrieve(ctx echo.Context) error {
	cfg, err := api.store.Load()
	if err != nil {
		return errors.Wrap(err, "loading notification config")
	}
	return ctx.JSON(http.StatusOK, cfg)
}

// update replaces the configuration wholesale.
func (api *notifConfigApi) update(ctx echo.Context) error {
	var cfg notif.Config
	if err := ctx.Bind(&cfg); err != nil {
		return errors.Wrap(err, "binding to Config")
	}
	if err := cfg.Validate(api.validate); err != nil {
		return err
	}

	if err := api.store.Save(cfg); err != nil {
		return errors.Wrap(err, "saving notification config")
	}
	return ctx.JSON(http.StatusOK, cfg)
}

func (api *notifConfigApi) reset(ctx echo.Context) error {
	cfg := notif.DefaultConfig()
	if err := api.store.Save(cfg); err != nil {
		return errors.Wrap(err, "resetting notification config")
	}
	return ctx.JSON(http.StatusOK, cfg)
}
