package controller

import (
	"context"
	"log"

	"lapangin-web/api/lapangin"
	"lapangin-web/models"
)

// ProfileController drives the account page.
type ProfileController struct {
	api lapangin.LapanginAPI
}

func NewProfileController(api lapangin.LapanginAPI) *ProfileController {
	return &ProfileController{api: api}
}

func (c *ProfileController) Load(ctx context.Context, view ProfileView) {
	resp, err := c.api.GetProfile(ctx)
	if err != nil {
		log.Printf("[ProfileController] Failed to load profile: %v", err)
		view.ShowToast(ToastError, MsgProfileLoadFailed)
		return
	}
	user := resp.User()
	if user == nil {
		view.ShowToast(ToastError, MsgProfileBadFormat)
		return
	}
	view.ShowProfile(*user)
}

// Save stores profile and shows the returned user, reloading when the
// reply carries none.
func (c *ProfileController) Save(ctx context.Context, view ProfileView, profile models.Profile) {
	resp, err := c.api.UpdateProfile(ctx, profile)
	if err != nil {
		log.Printf("[ProfileController] Failed to save profile: %v", err)
		view.ShowToast(ToastError, backendMessage(err, MsgProfileSaveFailed))
		return
	}
	if !resp.Success {
		view.ShowToast(ToastError, orDefault(resp.Message, MsgProfileSaveFailed))
		return
	}

	view.ShowToast(ToastSuccess, orDefault(resp.Message, MsgProfileSaved))
	if user := resp.User(); user != nil {
		view.ShowProfile(*user)
		return
	}
	c.Load(ctx, view)
}

func (c *ProfileController) Delete(ctx context.Context, view ProfileView) {
	resp, err := c.api.DeleteProfile(ctx)
	if err != nil {
		log.Printf("[ProfileController] Failed to delete account: %v", err)
		view.ShowToast(ToastError, backendMessage(err, MsgAccountDeleteFailed))
		return
	}
	if !resp.Success {
		view.ShowToast(ToastError, orDefault(resp.Message, MsgAccountDeleteFailed))
		return
	}
	view.ShowToast(ToastSuccess, MsgAccountDeleted)
	view.Redirect("/")
}
