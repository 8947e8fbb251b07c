package controls

import (
	"github.com/cliform-tools/cli/internal/params"
)

// Options tunes control construction. Custom maps a type name to a
// caller-provided binding that replaces the built-in resolution.
type Options struct {
	Custom map[string]CustomBinding
}

func (o *Options) customFor(typ params.ParamType) (CustomBinding, bool) {
	if o == nil || o.Custom == nil {
		return CustomBinding{}, false
	}
	b, ok := o.Custom[typ.TypeName()]
	return b, ok
}

// ResolveKind maps a parameter's declared type and multiplicity metadata
// to the control variant New would construct for it.
//
// Multiplicity wrappers are checked before the scalar type so that a
// repeated tuple becomes a repeat-of-tuples, and choice handles its own
// multiplicity with a multi-select.
func ResolveKind(p *params.Param, typ params.ParamType, o *Options) (Kind, error) {
	if _, ok := o.customFor(typ); ok {
		return KindCustom, nil
	}
	_, isBool := typ.(params.BoolType)
	if isBool && p.IsFlag && p.Prompt != "" {
		return KindConfirmDialog, nil
	}
	if p.ConfirmationPrompt {
		return KindConfirmPair, nil
	}
	if _, ok := typ.(params.ChoiceType); ok {
		if p.Multiple {
			return KindMultiSelect, nil
		}
		return KindSelect, nil
	}
	if p.Multiple {
		return KindRepeat, nil
	}
	if _, ok := typ.(params.TupleType); ok {
		return KindTuple, nil
	}
	if p.NArgs > 1 {
		return KindFixedList, nil
	}
	if isBool {
		return KindCheckbox, nil
	}
	switch typ.(type) {
	case params.IntType:
		return KindIntSpinner, nil
	case params.FloatType:
		return KindFloatSpinner, nil
	case params.PathType:
		return KindPath, nil
	case params.DateTimeType:
		return KindDateTime, nil
	}
	// Everything else, user-defined types included, falls back to a text
	// entry whose raw string goes through the type's conversion.
	return KindText, nil
}

// New constructs the control for a parameter.
func New(p *params.Param, o *Options) (Control, error) {
	return build(p, p.Type, nil, o)
}

// build is the recursive factory behind New; composite constructors call
// back into it with adjusted member parameters.
func build(p *params.Param, typ params.ParamType, parent Control, o *Options) (Control, error) {
	kind, err := ResolveKind(p, typ, o)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindCustom:
		binding, _ := o.customFor(typ)
		if binding.Get == nil || binding.Set == nil {
			return nil, &UnsupportedError{ParamName: p.Name, TypeName: typ.TypeName()}
		}
		return newCustomControl(p, typ, parent, binding), nil
	case KindConfirmDialog:
		return newConfirmDialogControl(p, typ, parent), nil
	case KindConfirmPair:
		return newConfirmPairControl(p, typ, parent, o)
	case KindSelect:
		return newSelectControl(p, typ, parent), nil
	case KindMultiSelect:
		return newMultiSelectControl(p, typ, parent), nil
	case KindRepeat:
		return newRepeatControl(p, typ, parent, o)
	case KindTuple:
		return newTupleControl(p, typ, parent, o)
	case KindFixedList:
		return newFixedListControl(p, typ, parent, o)
	case KindCheckbox:
		return newCheckboxControl(p, typ, parent), nil
	case KindIntSpinner:
		return newIntControl(p, typ, parent), nil
	case KindFloatSpinner:
		return newFloatControl(p, typ, parent), nil
	case KindPath:
		return newPathControl(p, typ, parent), nil
	case KindDateTime:
		return newDateTimeControl(p, typ, parent), nil
	case KindText:
		return newTextControl(KindText, p, typ, parent), nil
	}
	return nil, &UnsupportedError{ParamName: p.Name, TypeName: typ.TypeName()}
}
