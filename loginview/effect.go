package loginview

import "fmt"

type Op int

const (
	OpShow Op = iota
	OpHide
	OpAddClass
	OpRemoveClass
	OpSetText
	OpSetAttr
	OpRemoveAttr
)

var opNames = [...]string{
	OpShow:        "show",
	OpHide:        "hide",
	OpAddClass:    "addClass",
	OpRemoveClass: "removeClass",
	OpSetText:     "setText",
	OpSetAttr:     "setAttr",
	OpRemoveAttr:  "removeAttr",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Effect describes one change to the page. Name holds the class or
// attribute name, Value the text or attribute value.
type Effect struct {
	Op     Op
	Target string
	Name   string
	Value  string
}

func (e Effect) String() string {
	switch e.Op {
	case OpShow, OpHide:
		return fmt.Sprintf("%s(%s)", e.Op, e.Target)
	case OpSetText:
		return fmt.Sprintf("%s(%s, %q)", e.Op, e.Target, e.Value)
	case OpSetAttr:
		return fmt.Sprintf("%s(%s, %s=%q)", e.Op, e.Target, e.Name, e.Value)
	default:
		return fmt.Sprintf("%s(%s, %s)", e.Op, e.Target, e.Name)
	}
}

func Show(target string) Effect {
	return Effect{Op: OpShow, Target: target}
}

func Hide(target string) Effect {
	return Effect{Op: OpHide, Target: target}
}

func AddClass(target, class string) Effect {
	return Effect{Op: OpAddClass, Target: target, Name: class}
}

func RemoveClass(target, class string) Effect {
	return Effect{Op: OpRemoveClass, Target: target, Name: class}
}

func SetText(target, text string) Effect {
	return Effect{Op: OpSetText, Target: target, Value: text}
}

func SetAttr(target, name, val string) Effect {
	return Effect{Op: OpSetAttr, Target: target, Name: name, Value: val}
}

func RemoveAttr(target, name string) Effect {
	return Effect{Op: OpRemoveAttr, Target: target, Name: name}
}

// Apply executes effects in order.
func Apply(state FormState, effects []Effect) {
	for _, e := range effects {
		switch e.Op {
		case OpShow:
			state.SetVisible(e.Target, true)
		case OpHide:
			state.SetVisible(e.Target, false)
		case OpAddClass:
			state.AddClass(e.Target, e.Name)
		case OpRemoveClass:
			state.RemoveClass(e.Target, e.Name)
		case OpSetText:
			state.SetText(e.Target, e.Value)
		case OpSetAttr:
			state.SetAttr(e.Target, e.Name, e.Value)
		case OpRemoveAttr:
			state.RemoveAttr(e.Target, e.Name)
		}
	}
}
