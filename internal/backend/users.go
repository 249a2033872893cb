package backend

import (
	"encoding/json"
	"net/url"

	"github.com/dhananjaysingh10/P2P-D-X/internal/common"
)

///////// Users /////////

// The user service wraps every response in an envelope; campaign and
// institution endpoints return bare JSON instead.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) RegisterUser(u *common.User) error {
	return c.send("POST", c.BaseURL+"/api/v1/users/register", u)
}

// UserByEmail resolves a user record by its email. A miss is ErrNotFound, not
// a fetch failure; login treats the two very differently.
func (c *Client) UserByEmail(email string) (*common.User, error) {
	resp, err := c.do("GET", c.BaseURL+"/api/v1/users/email/"+url.PathEscape(email), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		return nil, ErrNotFound
	}

	var u common.User
	if err := json.Unmarshal(env.Data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CheckEmail(email string) (bool, error) {
	resp, err := c.do("GET", c.BaseURL+"/api/v1/users/check/email/"+url.PathEscape(email), nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &FetchError{Status: resp.StatusCode}
	}

	var env struct {
		Data bool `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return false, err
	}
	return env.Data, nil
}
