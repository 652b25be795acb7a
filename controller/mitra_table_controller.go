package controller

import (
	"context"
	"log"
	"strings"

	"lapangin-web/api/lapangin"
	"lapangin-web/catalog"
	"lapangin-web/models"
)

// MitraTableController drives the admin partner table.
type MitraTableController struct {
	api lapangin.LapanginAPI
}

func NewMitraTableController(api lapangin.LapanginAPI) *MitraTableController {
	return &MitraTableController{api: api}
}

// Load fetches every partner and shows them in sort order.
func (c *MitraTableController) Load(ctx context.Context, view MitraView, sort models.MitraSort) {
	rows, err := c.api.ListMitra(ctx)
	if err != nil {
		log.Printf("[MitraTableController] Failed to load mitra list: %v", err)
		view.ShowToast(ToastError, MsgMitraLoadFailed)
		return
	}
	view.ShowMitra(catalog.SortMitra(rows, sort), sort)
}

// SortBy reloads the table after a click on key's column header.
func (c *MitraTableController) SortBy(ctx context.Context, view MitraView, current models.MitraSort, key string) models.MitraSort {
	next := current.Toggle(key)
	c.Load(ctx, view, next)
	return next
}

func (c *MitraTableController) Approve(ctx context.Context, view MitraView, mitraID string) {
	c.update(ctx, view, mitraID, models.MitraStatusUpdate{Status: models.MitraApproved})
}

func (c *MitraTableController) Reject(ctx context.Context, view MitraView, mitraID, reason string) {
	c.update(ctx, view, mitraID, models.MitraStatusUpdate{
		Status: models.MitraRejected,
		Reason: strings.TrimSpace(reason),
	})
}

func (c *MitraTableController) update(ctx context.Context, view MitraView, mitraID string, update models.MitraStatusUpdate) {
	resp, err := c.api.UpdateMitraStatus(ctx, mitraID, update)
	if err != nil {
		log.Printf("[MitraTableController] Failed to set %s to %s: %v", mitraID, update.Status, err)
		view.ShowToast(ToastError, backendMessage(err, MsgMitraUpdateFailed))
		return
	}
	if resp.Status != models.StatusOK {
		view.ShowToast(ToastError, orDefault(resp.Message, MsgMitraUpdateFailed))
		return
	}

	view.ShowToast(ToastSuccess, orDefault(resp.Message, MsgMitraUpdated))
	row := models.Mitra{ID: mitraID, Status: update.Status, Reason: update.Reason}
	if resp.Data != nil {
		row = *resp.Data
	}
	view.ShowRowStatus(row)
}
