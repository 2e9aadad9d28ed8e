package loginserver

import (
	"errors"
	"net/http"

	"github.com/oklog/ulid/v2"
)

// Scaffold holds the values the identity provider hands to the login page.
// They are rendered as hidden fields and copied into the login form when
// the page is shown.
type Scaffold struct {
	FlowID       string      `json:"flow_id"`
	LoginTicket  string      `json:"login_ticket"`
	ExecutionKey string      `json:"execution_key"`
	PrevAddress  string      `json:"prev_address,omitempty"`
	AppLogo      string      `json:"app_logo,omitempty"`
	TenantLogo   string      `json:"tenant_logo,omitempty"`
	Providers    []*Provider `json:"providers,omitempty"`
	Iat          int64       `json:"iat"`
}

// Provider is a social login link. ID is the key the login page looks it up
// by: Facebook, Twitter, Google2 or LinkedIn2.
type Provider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Href string `json:"href"`
}

type ScaffoldSource interface {
	NewScaffold(r *http.Request) (*Scaffold, error)
}

var ErrNotFound = errors.New("not found")

func newFlowID() string {
	return ulid.Make().String()
}
