package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/cliform-tools/cli/internal/binding"
	"github.com/cliform-tools/cli/internal/controls"
)

// row is one navigable line in the content panel. Composite controls
// contribute one row for themselves plus one per member.
type row struct {
	ctl    controls.Control
	parent controls.Control
	index  int
	depth  int
	label  string
}

type composite interface {
	Children() []controls.Control
}

func flattenRows(reg *binding.Registry, key string) []row {
	var rows []row
	for _, ctl := range reg.Controls(key) {
		label := ctl.Param().Name
		rows = append(rows, row{ctl: ctl, label: label})

		switch c := ctl.(type) {
		case *controls.ConfirmPairControl:
			rows = append(rows,
				row{ctl: c.Field(), parent: ctl, index: 0, depth: 1, label: label},
				row{ctl: c.ConfirmField(), parent: ctl, index: 1, depth: 1, label: "repeat " + label},
			)
		case composite:
			for i, child := range c.Children() {
				rows = append(rows, row{
					ctl:    child,
					parent: ctl,
					index:  i,
					depth:  1,
					label:  fmt.Sprintf("%s[%d]", label, i),
				})
			}
		}
	}
	return rows
}

// editable reports whether enter opens the inline text entry for a
// control. Discrete controls toggle instead.
func editable(ctl controls.Control) bool {
	switch ctl.(type) {
	case *controls.TextControl, *controls.PathControl, *controls.CustomControl,
		*controls.IntControl, *controls.FloatControl, *controls.DateTimeControl:
		return true
	}
	return false
}

// editSeed is the string the inline entry starts from.
func editSeed(ctl controls.Control) string {
	if dt, ok := ctl.(*controls.DateTimeControl); ok {
		ts, _ := dt.WidgetValue().(time.Time)
		if ts.IsZero() {
			return ""
		}
		return ts.Format(dt.DisplayFormat())
	}
	return fmt.Sprintf("%v", ctl.WidgetValue())
}

// commitEdit applies the typed text back onto the control. An empty
// entry disables an optional control rather than storing "".
func commitEdit(ctl controls.Control, text string) error {
	switch ctl.(type) {
	case *controls.IntControl, *controls.FloatControl, *controls.DateTimeControl:
		if strings.TrimSpace(text) == "" {
			return ctl.SetValue(nil)
		}
	}
	return ctl.SetValue(text)
}

// valueText renders a control's current raw state for the content panel.
func valueText(ctl controls.Control) string {
	switch c := ctl.(type) {

	case *controls.CheckboxControl:
		if on, _ := c.WidgetValue().(bool); on {
			return "[x]"
		}
		return "[ ]"

	case *controls.ConfirmDialogControl:
		answer := "no"
		if yes, _ := c.WidgetValue().(bool); yes {
			answer = "yes"
		}
		return fmt.Sprintf("asks %q (currently %s)", c.Param().Prompt, answer)

	case *controls.SelectControl:
		current, _ := c.WidgetValue().(string)
		if current == "" {
			return "(none)"
		}
		return current

	case *controls.MultiSelectControl:
		selected, _ := c.WidgetValue().([]string)
		if len(selected) == 0 {
			return "(none)"
		}
		return strings.Join(selected, ", ")

	case *controls.FeatureSwitchControl:
		current, _ := c.WidgetValue().(string)
		if current == "" {
			return "(none)"
		}
		return current

	case *controls.DateTimeControl:
		ts, _ := c.WidgetValue().(time.Time)
		if ts.IsZero() {
			return "(unset)"
		}
		return ts.Format(c.DisplayFormat())

	case *controls.RepeatControl:
		n := len(c.Children())
		if n == 1 {
			return "1 entry"
		}
		return fmt.Sprintf("%d entries", n)

	case *controls.TupleControl, *controls.FixedListControl, *controls.ConfirmPairControl:
		return ""

	case *controls.PathControl:
		s, _ := c.WidgetValue().(string)
		if s == "" {
			return "(unset)"
		}
		if s == "-" {
			return "- (stdin)"
		}
		return s
	}

	s := fmt.Sprintf("%v", ctl.WidgetValue())
	if s == "" {
		return "(unset)"
	}
	return s
}
