package loginserver

import (
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
)

// MockScaffoldSource stands in for the identity provider. Tickets and
// execution keys are random identifiers that nothing validates.
type MockScaffoldSource struct {
	AppLogo    string
	TenantLogo string
	Providers  []*Provider
}

func (m *MockScaffoldSource) NewScaffold(r *http.Request) (*Scaffold, error) {
	return &Scaffold{
		FlowID:       newFlowID(),
		LoginTicket:  "LT-" + ulid.Make().String(),
		ExecutionKey: "e" + ulid.Make().String() + "s1",
		PrevAddress:  r.Referer(),
		AppLogo:      m.AppLogo,
		TenantLogo:   m.TenantLogo,
		Providers:    m.Providers,
		Iat:          time.Now().Unix(),
	}, nil
}
