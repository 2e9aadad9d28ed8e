package loginview

import "strings"

type Field string

const (
	FieldUsername Field = "username"
	FieldPassword Field = "password"
)

// Fields lists the required fields in the order they are checked.
var Fields = []Field{FieldUsername, FieldPassword}

type fieldView struct {
	input   string
	caption string
	group   string
	message string
}

var fieldViews = map[Field]fieldView{
	FieldUsername: {input: SelUsername, caption: ".userNameLabel", group: ".ot_username", message: "#usernameError"},
	FieldPassword: {input: SelPassword, caption: ".passwordLabel", group: ".ot_password", message: "#passwordError"},
}

type Credentials struct {
	Username string
	Password string
}

func (c Credentials) value(f Field) string {
	switch f {
	case FieldUsername:
		return c.Username
	case FieldPassword:
		return c.Password
	}
	return ""
}

// Messages are the texts shown under a field that failed validation.
type Messages struct {
	UsernameRequired string
	PasswordRequired string
}

var DefaultMessages = Messages{
	UsernameRequired: "Username is required",
	PasswordRequired: "Password is required",
}

func (m Messages) required(f Field) string {
	switch f {
	case FieldUsername:
		return m.UsernameRequired
	case FieldPassword:
		return m.PasswordRequired
	}
	return ""
}

// Validation maps each failed field to its message. An empty Validation
// means the submission may proceed.
type Validation map[Field]string

func (v Validation) Valid() bool {
	return len(v) == 0
}

// Failed returns the failed fields in check order.
func (v Validation) Failed() []Field {
	var failed []Field
	for _, f := range Fields {
		if _, ok := v[f]; ok {
			failed = append(failed, f)
		}
	}
	return failed
}

// Validate checks every required field; a failure in one field never skips
// the others.
func Validate(c Credentials, m Messages) Validation {
	v := Validation{}
	for _, f := range Fields {
		if strings.TrimSpace(c.value(f)) == "" {
			v[f] = m.required(f)
		}
	}
	return v
}

// FieldEffects renders a validation onto the page: failed fields get their
// message and the error class, passing fields are cleared.
func FieldEffects(v Validation) []Effect {
	effects := make([]Effect, 0, len(Fields)*2)
	for _, f := range Fields {
		fv := fieldViews[f]
		if msg, failed := v[f]; failed {
			effects = append(effects, SetText(fv.message, msg), AddClass(fv.group, ClassError))
		} else {
			effects = append(effects, SetText(fv.message, ""), RemoveClass(fv.group, ClassError))
		}
	}
	return effects
}
