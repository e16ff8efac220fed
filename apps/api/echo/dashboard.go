package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/crestview/admin/core/dashboard"
)

type dashboardApi struct {
	svc *dashboard.Service
}

func registerDashboardAPI(g *echo.Group, svc *dashboard.Service) {
	api := dashboardApi{svc: svc}

	dg := g.Group("/dashboard")
	dg.GET("", api.retrieve)
	dg.GET("/export", api.export)
}

func (api *dashboardApi) retrieve(ctx echo.Context) error {
	snap, err := api.svc.Get()
	if err != nil {
		return errors.Wrap(err, "getting dashboard snapshot")
	}
	return ctx.JSON(http.StatusOK, snap)
}

func (api *dashboardApi) export(ctx echo.Context) error {
	snap, err := api.svc.Get()
	if err != nil {
		return errors.Wrap(err, "exporting dashboard snapshot")
	}
	return exportJSON(ctx, "dashboard-export.json", snap)
}

// exportJSON serves payload as a pretty-printed JSON attachment.
func exportJSON(ctx echo.Context, filename string, payload interface{}) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.JSONPretty(http.StatusOK, payload, "  ")
}

// confirmDelete enforces the destructive-action confirmation on delete
// endpoints: the request must carry confirm=true or nothing is deleted.
func confirmDelete(ctx echo.Context) error {
	if ctx.QueryParam("confirm") != "true" {
		return errConfirmRequired
	}
	return nil
}
