package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/crestview/admin/core/parent"
)

type parentApi struct {
	svc *parent.Service
}

func registerParentAPI(g *echo.Group, svc *parent.Service) {
	api := parentApi{svc: svc}

	pg := g.Group("/parents")
	pg.GET("", api.query)
	pg.POST("", api.create)

	dg := pg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

func (api *parentApi) create(ctx echo.Context) error {
	var data parent.NewParent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewParent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	p, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating parent")
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *parentApi) query(ctx echo.Context) error {
	filter := new(parent.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	parents, err := api.svc.Filter(*filter)
	if err != nil {
		return errors.Wrap(err, "querying parents")
	}
	if parents == nil {
		parents = []parent.Parent{}
	}
	return ctx.JSON(http.StatusOK, parents)
}

func (api *parentApi) retrieve(ctx echo.Context) error {
	p, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == parent.ErrNotFound {
			return ctx.NoContent(http.StatusNoContent)
		}
		return errors.Wrap(err, "finding parent by ID")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *parentApi) update(ctx echo.Context) error {
	var data parent.UpdateParent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateParent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	p, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == parent.ErrNotFound {
			return ctx.NoContent(http.StatusNoContent)
		}
		return errors.Wrap(err, "updating parent")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *parentApi) destroy(ctx echo.Context) error {
	if err := confirmDelete(ctx); err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting parent")
	}
	return ctx.NoContent(http.StatusNoContent)
}
