package loginview

import "strings"

type EventType int

const (
	EventFocus EventType = iota
	EventBlur
	EventSubmit
	EventImageError
)

func (t EventType) String() string {
	switch t {
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventSubmit:
		return "submit"
	case EventImageError:
		return "imageError"
	}
	return "unknown"
}

// Event is a user interface event with the page values it depends on.
//
// Focus and Blur carry Field and its current Value. Submit carries the
// Credentials. ImageError carries the fallback still bound to the branding
// image, empty once the fallback has been used.
type Event struct {
	Type        EventType
	Field       Field
	Value       string
	Credentials Credentials
	FallbackSrc string
}

type Result struct {
	Effects       []Effect
	CancelDefault bool
}

// Handler turns events into effects. It holds no page state.
type Handler struct {
	Messages Messages
}

func (h Handler) Handle(e Event) Result {
	switch e.Type {
	case EventFocus:
		return h.focus(e)
	case EventBlur:
		return h.blur(e)
	case EventSubmit:
		return h.submit(e)
	case EventImageError:
		return h.imageError(e)
	}
	return Result{}
}

func (h Handler) focus(e Event) Result {
	fv, ok := fieldViews[e.Field]
	if !ok {
		return Result{}
	}
	return Result{Effects: []Effect{
		Show(fv.caption),
		AddClass(fv.input, ClassFocused),
	}}
}

func (h Handler) blur(e Event) Result {
	fv, ok := fieldViews[e.Field]
	if !ok {
		return Result{}
	}
	var effects []Effect
	if strings.TrimSpace(e.Value) == "" {
		effects = append(effects, Hide(fv.caption))
	}
	effects = append(effects, RemoveClass(fv.input, ClassFocused))
	return Result{Effects: effects}
}

func (h Handler) submit(e Event) Result {
	v := Validate(e.Credentials, h.messages())
	effects := append([]Effect{Hide(SelServerErrors)}, FieldEffects(v)...)
	return Result{
		Effects:       effects,
		CancelDefault: !v.Valid(),
	}
}

// imageError swaps in the fallback and detaches it in the same step, so a
// failing fallback does not trigger another swap.
func (h Handler) imageError(e Event) Result {
	if e.FallbackSrc == "" {
		return Result{}
	}
	return Result{Effects: []Effect{
		RemoveAttr(SelTenantBranding, AttrFallbackSrc),
		SetAttr(SelTenantBranding, "src", e.FallbackSrc),
	}}
}

func (h Handler) messages() Messages {
	m := h.Messages
	if m.UsernameRequired == "" {
		m.UsernameRequired = DefaultMessages.UsernameRequired
	}
	if m.PasswordRequired == "" {
		m.PasswordRequired = DefaultMessages.PasswordRequired
	}
	return m
}

// Dispatch reads the values an event depends on from state, handles it and
// applies the effects. It reports whether the default action was cancelled.
func (h Handler) Dispatch(state FormState, e Event) bool {
	switch e.Type {
	case EventFocus, EventBlur:
		if fv, ok := fieldViews[e.Field]; ok {
			e.Value, _ = state.Value(fv.input)
		}
	case EventSubmit:
		e.Credentials.Username, _ = state.Value(SelUsername)
		e.Credentials.Password, _ = state.Value(SelPassword)
	case EventImageError:
		e.FallbackSrc, _ = state.Attr(SelTenantBranding, AttrFallbackSrc)
	}
	res := h.Handle(e)
	Apply(state, res.Effects)
	return res.CancelDefault
}
