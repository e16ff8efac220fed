package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/crestview/admin/core/settings"
)

type settingsApi struct {
	store *settings.Store
}

func registerSettingsAPI(g *echo.Group, store *settings.Store) {
	api := settingsApi{store: store}

	sg := g.Group("/settings")
	sg.GET("", api.retrieve)
	sg.PUT("", api.update)
	sg.GET("/audit-export", api.auditExport)
}

func (api *settingsApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.Get())
}

func (api *settingsApi) update(ctx echo.Context) error {
	var data settings.Settings
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Settings")
	}

	saved, err := api.store.Put(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, saved)
}

func (api *settingsApi) auditExport(ctx echo.Context) error {
	return exportJSON(ctx, "audit-export.json", api.store.Audit(time.Now()))
}
