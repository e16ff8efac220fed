package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/crestview/admin/core/invoice"
)

type invoiceApi struct {
	svc *invoice.Service
}

// InvoiceListResponse pairs a filtered listing with its aggregation; totals
// always reflect exactly the rows returned.
type InvoiceListResponse struct {
	Invoices []invoice.Invoice `json:"invoices"`
	Totals   invoice.Totals    `json:"totals"`
}

func registerInvoiceAPI(g *echo.Group, svc *invoice.Service) {
	api := invoiceApi{svc: svc}

	ig := g.Group("/invoices")
	ig.GET("", api.query)
	ig.POST("", api.create)
	ig.GET("/export", api.export)

	dg := ig.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/status", api.setStatus)
	dg.POST("/pay", api.markPaid)
}

func (api *invoiceApi) create(ctx echo.Context) error {
	var data invoice.NewInvoice
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewInvoice")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	inv, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating invoice")
	}
	return ctx.JSON(http.StatusCreated, inv)
}

func (api *invoiceApi) list(ctx echo.Context) (InvoiceListResponse, error) {
	resp := InvoiceListResponse{Invoices: []invoice.Invoice{}}

	filter := new(invoice.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return resp, errors.Wrap(err, "binding to QueryFilter")
	}

	invoices, err := api.svc.Filter(*filter)
	if err != nil {
		return resp, errors.Wrap(err, "querying invoices")
	}
	if invoices != nil {
		resp.Invoices = invoices
	}
	resp.Totals = invoice.Totalize(resp.Invoices)
	return resp, nil
}

func (api *invoiceApi) query(ctx echo.Context) error {
	resp, err := api.list(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *invoiceApi) export(ctx echo.Context) error {
	resp, err := api.list(ctx)
	if err != nil {
		return err
	}
	return exportJSON(ctx, "invoices-export.json", resp)
}

func (api *invoiceApi) retrieve(ctx echo.Context) error {
	inv, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == invoice.ErrNotFound {
			return ctx.NoContent(http.StatusNoContent)
		}
		return errors.Wrap(err, "finding invoice by ID")
	}
	return ctx.JSON(http.StatusOK, inv)
}

func (api *invoiceApi) update(ctx echo.Context) error {
	var data invoice.UpdateInvoice
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateInvoice")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	inv, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == invoice.ErrNotFound {
			return ctx.NoContent(http.StatusNoContent)
		}
		return errors.Wrap(err, "updating invoice")
	}
	return ctx.JSON(http.StatusOK, inv)
}

func (api *invoiceApi) setStatus(ctx echo.Context) error {
	var data invoice.StatusChange
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StatusChange")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	inv, err := api.svc.SetStatus(ctx.Param("id"), data.Status)
	if err != nil {
		if errors.Cause(err) == invoice.ErrNotFound {
			return ctx.NoContent(http.StatusNoContent)
		}
		return errors.Wrap(err, "setting invoice status")
	}
	return ctx.JSON(http.StatusOK, inv)
}

func (api *invoiceApi) markPaid(ctx echo.Context) error {
	inv, err := api.svc.MarkPaid(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == invoice.ErrNotFound {
			return ctx.NoContent(http.StatusNoContent)
		}
		return errors.Wrap(err, "marking invoice paid")
	}
	return ctx.JSON(http.StatusOK, inv)
}

func (api *invoiceApi) destroy(ctx echo.Context) error {
	if err := confirmDelete(ctx); err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting invoice")
	}
	return ctx.NoContent(http.StatusNoContent)
}
