package controls

import "fmt"

// Kind tags the closed set of control variants the resolver can produce.
type Kind int

const (
	KindText Kind = iota
	KindCheckbox
	KindConfirmDialog
	KindSelect
	KindMultiSelect
	KindIntSpinner
	KindFloatSpinner
	KindPath
	KindDateTime
	KindTuple
	KindFixedList
	KindRepeat
	KindConfirmPair
	KindFeatureSwitch
	KindCustom
)

var kindNames = map[Kind]string{
	KindText:          "text",
	KindCheckbox:      "checkbox",
	KindConfirmDialog: "confirm-dialog",
	KindSelect:        "select",
	KindMultiSelect:   "multi-select",
	KindIntSpinner:    "int-spinner",
	KindFloatSpinner:  "float-spinner",
	KindPath:          "path",
	KindDateTime:      "datetime",
	KindTuple:         "tuple",
	KindFixedList:     "fixed-list",
	KindRepeat:        "repeat",
	KindConfirmPair:   "confirm-pair",
	KindFeatureSwitch: "feature-switch",
	KindCustom:        "custom",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// UnsupportedError reports a type/arity combination no control variant
// covers. It carries the requested kind name for the message.
type UnsupportedError struct {
	ParamName string
	TypeName  string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no control supports parameter %q of type %q", e.ParamName, e.TypeName)
}
