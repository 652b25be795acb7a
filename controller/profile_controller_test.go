package controller

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapangin-web/api"
	"lapangin-web/models"
)

func profileReply(t *testing.T, raw string) *models.ProfileResponse {
	var resp models.ProfileResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	return &resp
}

func TestProfile_Load(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		err       error
		wantName  string
		wantToast string
	}{
		{name: "ok", raw: `{"success": true, "data": {"user": {"first_name": "Budi"}}}`, wantName: "Budi"},
		{name: "unexpected shape", raw: `{"success": true, "data": {}}`, wantToast: MsgProfileBadFormat},
		{name: "failure", err: errBackendDown, wantToast: MsgProfileLoadFailed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stub := &stubAPI{getProfile: func(context.Context) (*models.ProfileResponse, error) {
				if test.err != nil {
					return nil, test.err
				}
				return profileReply(t, test.raw), nil
			}}
			view := &recordingView{}

			NewProfileController(stub).Load(context.Background(), view)

			assert.Equal(t, test.wantToast, view.lastToast().Message)
			if test.wantName == "" {
				assert.Nil(t, view.profile)
				return
			}
			require.NotNil(t, view.profile)
			assert.Equal(t, test.wantName, view.profile.FirstName)
		})
	}
}

func TestProfile_SaveShowsReturnedUser(t *testing.T) {
	stub := &stubAPI{saveProfile: func(ctx context.Context, p models.Profile) (*models.ProfileResponse, error) {
		return profileReply(t, `{"success": true, "message": "Tersimpan", "data": {"user": {"first_name": "Budi", "address": "Depok"}}}`), nil
	}}
	view := &recordingView{}

	NewProfileController(stub).Save(context.Background(), view, models.Profile{FirstName: "Budi", Address: "Depok"})

	assert.Equal(t, toast{Kind: ToastSuccess, Message: "Tersimpan"}, view.lastToast())
	require.NotNil(t, view.profile)
	assert.Equal(t, "Depok", view.profile.Address)
	assert.Equal(t, []string{"UpdateProfile"}, stub.Calls())
}

func TestProfile_SaveReloadsWithoutUser(t *testing.T) {
	stub := &stubAPI{
		saveProfile: func(context.Context, models.Profile) (*models.ProfileResponse, error) {
			return &models.ProfileResponse{Success: true}, nil
		},
		getProfile: func(context.Context) (*models.ProfileResponse, error) {
			return profileReply(t, `{"success": true, "data": {"user": {"first_name": "Reloaded"}}}`), nil
		},
	}
	view := &recordingView{}

	NewProfileController(stub).Save(context.Background(), view, models.Profile{})

	assert.Equal(t, toast{Kind: ToastSuccess, Message: MsgProfileSaved}, view.toasts[0])
	require.NotNil(t, view.profile)
	assert.Equal(t, "Reloaded", view.profile.FirstName)
	assert.Equal(t, []string{"UpdateProfile", "GetProfile"}, stub.Calls())
}

func TestProfile_SaveFailure(t *testing.T) {
	stub := &stubAPI{saveProfile: func(context.Context, models.Profile) (*models.ProfileResponse, error) {
		return nil, &api.StatusError{StatusCode: 400, Body: []byte(`{"success": false, "message": "Email sudah dipakai"}`)}
	}}
	view := &recordingView{}

	NewProfileController(stub).Save(context.Background(), view, models.Profile{})

	assert.Equal(t, toast{Kind: ToastError, Message: "Email sudah dipakai"}, view.lastToast())
	assert.Nil(t, view.profile)
}

func TestProfile_Delete(t *testing.T) {
	stub := &stubAPI{deleteProfile: func(context.Context) (*models.ProfileResponse, error) {
		return &models.ProfileResponse{Success: true}, nil
	}}
	view := &recordingView{}

	NewProfileController(stub).Delete(context.Background(), view)

	assert.Equal(t, toast{Kind: ToastSuccess, Message: MsgAccountDeleted}, view.lastToast())
	assert.Equal(t, "/", view.redirect)

	stub.deleteProfile = func(context.Context) (*models.ProfileResponse, error) { return nil, errBackendDown }
	view = &recordingView{}

	NewProfileController(stub).Delete(context.Background(), view)

	assert.Equal(t, toast{Kind: ToastError, Message: MsgAccountDeleteFailed}, view.lastToast())
	assert.Empty(t, view.redirect)
}
