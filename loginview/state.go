package loginview

// FormState is the page the controller reads from and writes to. Selectors
// are CSS selectors; operations on a selector that matches nothing are
// no-ops and reads report ok == false.
type FormState interface {
	Value(sel string) (string, bool)
	Values(sel string) []string
	SetValue(sel, val string)
	Attr(sel, name string) (string, bool)
	SetAttr(sel, name, val string)
	RemoveAttr(sel, name string)
	Remove(sel string)
	Visible(sel string) bool
	SetVisible(sel string, visible bool)
	HasClass(sel, class string) bool
	AddClass(sel, class string)
	RemoveClass(sel, class string)
	Text(sel string) string
	SetText(sel, text string)
	AppendParagraph(sel, class, text string)
}

// Selectors of the rendered login page.
const (
	SelLoginForm        = "#loginForm"
	SelTempForm         = "#tempForm"
	SelFormTicket       = "#loginForm input[name=lt]"
	SelFormExecution    = "#loginForm input[name=execution]"
	SelFormPrevAddress  = "#loginForm input[name=prevAddress]"
	SelLoginTicket      = "input[name=loginTicket]"
	SelFlowExecutionKey = "input[name=flowExecutionKey]"
	SelPrevAddress      = "input[name=prevAddressContainer]"
	SelAppLogo          = "input[name=appLogo]"
	SelTenantLogo       = "input[name=tenantLogo]"
	SelProviderList     = "#list-providers"
	SelLoginErrorMsg    = "input[name=loginErrorMsg]"
	SelServerErrors     = ".serverErrorMsg"
	SelTenantBranding   = "#tenantBranding"
	SelForgetPassword   = "#forgetPasswordLink"
	SelUsername         = "#username"
	SelPassword         = "#password"
)

const (
	AttrFallbackSrc = "data-fallback-src"
	// AttrBranding marks the tenant image once Show has resolved it. Its
	// value is BrandingTenant or BrandingDefault.
	AttrBranding = "data-branding"

	BrandingTenant  = "tenant"
	BrandingDefault = "default"

	ClassFocused = "blue-border"
	ClassError   = "has-error"
	ClassMessage = "color-red"
)
