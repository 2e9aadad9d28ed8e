package loginview

type Config struct {
	Messages Messages
	// DefaultBrandingURL is shown when the service parameter does not
	// resolve. Without it the branding image is left without a source.
	DefaultBrandingURL string
}

type Controller struct {
	Handler
	defaultBrandingURL string
}

func NewController(config Config) *Controller {
	return &Controller{
		Handler:            Handler{Messages: config.Messages},
		defaultBrandingURL: config.DefaultBrandingURL,
	}
}

type socialProvider struct {
	key  string
	icon string
}

var socialProviders = []socialProvider{
	{key: "Facebook", icon: "facebook"},
	{key: "Twitter", icon: "twitter"},
	{key: "Google2", icon: "google"},
	{key: "LinkedIn2", icon: "linkedin"},
}

// scaffolding is removed once its values are copied into the login form.
var scaffolding = []string{
	SelAppLogo,
	SelTenantLogo,
	SelLoginTicket,
	SelFlowExecutionKey,
	SelTempForm,
	SelPrevAddress,
	SelProviderList,
	SelLoginErrorMsg,
}

// Show initializes a freshly rendered login page. Running it again on the
// same page changes nothing. Show always completes; a non-nil error
// (wrapping ErrInvalidService) reports that branding fell back to the
// default.
func (c *Controller) Show(state FormState, rawQuery string) error {
	copyValue(state, SelLoginTicket, SelFormTicket)
	copyValue(state, SelFlowExecutionKey, SelFormExecution)
	copyAttr(state, SelTempForm, SelLoginForm, "action")
	copyValue(state, SelPrevAddress, SelFormPrevAddress)
	for _, p := range socialProviders {
		copyAttr(state, "#list-providers li#"+p.key+" a", ".socialNetWorks a#"+p.icon, "href")
	}

	// read before the scaffolding goes
	errorMsgs := state.Values(SelLoginErrorMsg)

	for _, sel := range scaffolding {
		state.Remove(sel)
	}

	err := c.updateBranding(state, rawQuery)
	c.showErrorMessages(state, errorMsgs)
	state.SetAttr(SelUsername, "autofocus", "")
	return err
}

func (c *Controller) updateBranding(state FormState, rawQuery string) error {
	// a placeholder src from the template does not count, only the marker
	if _, done := state.Attr(SelTenantBranding, AttrBranding); done {
		return nil
	}

	b, err := BrandingFor(rawQuery)
	if err != nil {
		if c.defaultBrandingURL != "" {
			state.SetAttr(SelTenantBranding, "src", c.defaultBrandingURL)
		} else {
			state.RemoveAttr(SelTenantBranding, "src")
		}
		state.SetAttr(SelTenantBranding, AttrBranding, BrandingDefault)
		return err
	}

	Apply(state, []Effect{
		SetAttr(SelTenantBranding, AttrBranding, BrandingTenant),
		SetAttr(SelTenantBranding, "src", b.Image),
		SetAttr(SelTenantBranding, AttrFallbackSrc, b.Fallback),
		SetAttr(SelForgetPassword, "href", b.PasswordReset),
	})
	return nil
}

func (c *Controller) showErrorMessages(state FormState, msgs []string) {
	if len(msgs) == 0 {
		return
	}
	for _, msg := range msgs {
		state.AppendParagraph(SelServerErrors, ClassMessage, msg)
	}
	state.SetVisible(SelServerErrors, true)
}

func copyValue(state FormState, from, to string) {
	if v, ok := state.Value(from); ok {
		state.SetValue(to, v)
	}
}

func copyAttr(state FormState, from, to, name string) {
	if v, ok := state.Attr(from, name); ok {
		state.SetAttr(to, name, v)
	}
}
