package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/socialdeck/internal/client/client"
	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

// fakeClient implements client.Client for service unit tests. Each call is
// recorded by name; results come from the exported fields.
type fakeClient struct {
	calls []string

	Err error

	RegisterMsg string
	LastReg     models.Registration

	LoginRes   *client.LoginResult
	LastEmail  string
	LastCode   string
	ProfileRet *models.User

	Status   models.TwoFactorStatus
	Setup    models.TwoFactorSetup
	LastPass string

	Accounts   []models.Account
	LastUserID string
	LastID     string
	AuthURL    models.AuthURL

	Slots    []models.ScheduleSlot
	Options  models.ScheduleOptions
	LastDay  models.Weekday
	LastTime string

	LastDraft    models.PostDraft
	LastMedia    []byte
	PostRet      models.Post
	MessageRet   string
	Closed, Pung bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeClient) Close() error { f.record("Close"); f.Closed = true; return f.Err }

func (f *fakeClient) Ping(context.Context) error { f.record("Ping"); f.Pung = true; return f.Err }

func (f *fakeClient) Register(_ context.Context, r models.Registration) (string, error) {
	f.record("Register")
	f.LastReg = r
	return f.RegisterMsg, f.Err
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*client.LoginResult, error) {
	f.record("Login")
	f.LastEmail, f.LastPass = email, password
	if f.Err != nil {
		return nil, f.Err
	}
	return f.LoginRes, nil
}

func (f *fakeClient) VerifyTwoFactorLogin(_ context.Context, email, code string) (*client.LoginResult, error) {
	f.record("VerifyTwoFactorLogin")
	f.LastEmail, f.LastCode = email, code
	if f.Err != nil {
		return nil, f.Err
	}
	return f.LoginRes, nil
}

func (f *fakeClient) Profile(context.Context) (*models.User, error) {
	f.record("Profile")
	if f.Err != nil {
		return nil, f.Err
	}
	return f.ProfileRet, nil
}

func (f *fakeClient) TwoFactorStatus(context.Context) (*models.TwoFactorStatus, error) {
	f.record("TwoFactorStatus")
	if f.Err != nil {
		return nil, f.Err
	}
	return &f.Status, nil
}

func (f *fakeClient) GenerateTwoFactor(context.Context) (*models.TwoFactorSetup, error) {
	f.record("GenerateTwoFactor")
	if f.Err != nil {
		return nil, f.Err
	}
	return &f.Setup, nil
}

func (f *fakeClient) VerifyTwoFactor(_ context.Context, code string) (string, error) {
	f.record("VerifyTwoFactor")
	f.LastCode = code
	return f.MessageRet, f.Err
}

func (f *fakeClient) DisableTwoFactor(_ context.Context, pw string) (string, error) {
	f.record("DisableTwoFactor")
	f.LastPass = pw
	return f.MessageRet, f.Err
}

func (f *fakeClient) ListAccounts(_ context.Context, userID string) ([]models.Account, error) {
	f.record("ListAccounts")
	f.LastUserID = userID
	return f.Accounts, f.Err
}

func (f *fakeClient) DisconnectAccount(_ context.Context, id string) (string, error) {
	f.record("DisconnectAccount")
	f.LastID = id
	return f.MessageRet, f.Err
}

func (f *fakeClient) ProviderAuthURL(_ context.Context, p models.Platform) (*models.AuthURL, error) {
	f.record("ProviderAuthURL:" + string(p))
	if f.Err != nil {
		return nil, f.Err
	}
	return &f.AuthURL, nil
}

func (f *fakeClient) ConnectMastodon(_ context.Context, code string) (string, error) {
	f.record("ConnectMastodon")
	f.LastCode = code
	return f.MessageRet, f.Err
}

func (f *fakeClient) ListSchedule(context.Context) ([]models.ScheduleSlot, error) {
	f.record("ListSchedule")
	return f.Slots, f.Err
}

func (f *fakeClient) AddScheduleSlot(_ context.Context, day models.Weekday, timeOfDay string) (*models.ScheduleSlot, error) {
	f.record("AddScheduleSlot")
	f.LastDay, f.LastTime = day, timeOfDay
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.ScheduleSlot{ID: "1", DayOfWeek: day, TimeOfDay: timeOfDay}, nil
}

func (f *fakeClient) DeleteScheduleSlot(_ context.Context, id string) error {
	f.record("DeleteScheduleSlot")
	f.LastID = id
	return f.Err
}

func (f *fakeClient) ScheduleOptions(context.Context) (*models.ScheduleOptions, error) {
	f.record("ScheduleOptions")
	if f.Err != nil {
		return nil, f.Err
	}
	return &f.Options, nil
}

func (f *fakeClient) CreatePost(_ context.Context, d models.PostDraft) (*models.Post, error) {
	f.record("CreatePost")
	f.LastDraft = d
	if d.Media != nil {
		f.LastMedia, _ = io.ReadAll(d.Media.Content)
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return &f.PostRet, nil
}
