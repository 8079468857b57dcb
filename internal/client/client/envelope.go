package client

import (
	"encoding/json"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

// envelope is the common response shape {success, message?, data?}.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// hasData reports whether the server sent a non-null data member.
func (e envelope) hasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

// Some endpoints return their payload at the top level next to success.
type loginBody struct {
	Token             string       `json:"token"`
	User              *models.User `json:"user"`
	RequiresTwoFactor bool         `json:"requiresTwoFactor"`
	Email             string       `json:"email"`
}

type sessionData struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type userBody struct {
	User *models.User `json:"user"`
}

type postBody struct {
	Post *models.Post `json:"post"`
}

func unmarshalData(env envelope, out any) error {
	return json.Unmarshal(env.Data, out)
}
