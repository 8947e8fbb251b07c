package params

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ParamType converts raw widget/token content into a typed value.
// Convert accepts either a string (as read from the UI or a command line)
// or a value that is already in the type's native representation.
type ParamType interface {
	// TypeName identifies the type in error messages ("integer", "choice", ...).
	TypeName() string

	Convert(value any) (any, error)
}

// StringType accepts anything and renders it as a string.
type StringType struct{}

func (StringType) TypeName() string { return "text" }

func (StringType) Convert(value any) (any, error) {
	if value == nil {
		return "", nil
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return fmt.Sprintf("%v", value), nil
}

// BoolType accepts bools and the usual textual spellings.
type BoolType struct{}

func (BoolType) TypeName() string { return "boolean" }

func (BoolType) Convert(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true, nil
		case "0", "false", "f", "no", "n", "off", "":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a valid boolean", v)
	}
	return nil, fmt.Errorf("%v is not a valid boolean", value)
}

// IntType is an integer, optionally bounded. With Clamp set, out-of-range
// values are pulled to the nearest bound instead of failing.
type IntType struct {
	Min, Max       int64
	HasMin, HasMax bool
	Clamp          bool
}

func (t IntType) TypeName() string {
	if t.HasMin || t.HasMax {
		return "integer range"
	}
	return "integer"
}

func (t IntType) Convert(value any) (any, error) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != float64(int64(v)) {
			return nil, fmt.Errorf("%v is not a valid integer", v)
		}
		n = int64(v)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid integer", v)
		}
		n = parsed
	default:
		return nil, fmt.Errorf("%v is not a valid integer", value)
	}
	return t.check(n)
}

func (t IntType) check(n int64) (any, error) {
	if t.HasMin && n < t.Min {
		if !t.Clamp {
			return nil, fmt.Errorf("%d is not in the valid range (min %d)", n, t.Min)
		}
		n = t.Min
	}
	if t.HasMax && n > t.Max {
		if !t.Clamp {
			return nil, fmt.Errorf("%d is not in the valid range (max %d)", n, t.Max)
		}
		n = t.Max
	}
	return n, nil
}

// FloatType is a float, optionally bounded, optionally clamping.
type FloatType struct {
	Min, Max       float64
	HasMin, HasMax bool
	Clamp          bool
}

func (t FloatType) TypeName() string {
	if t.HasMin || t.HasMax {
		return "float range"
	}
	return "float"
}

func (t FloatType) Convert(value any) (any, error) {
	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid float", v)
		}
		f = parsed
	default:
		return nil, fmt.Errorf("%v is not a valid float", value)
	}
	if t.HasMin && f < t.Min {
		if !t.Clamp {
			return nil, fmt.Errorf("%v is not in the valid range (min %v)", f, t.Min)
		}
		f = t.Min
	}
	if t.HasMax && f > t.Max {
		if !t.Clamp {
			return nil, fmt.Errorf("%v is not in the valid range (max %v)", f, t.Max)
		}
		f = t.Max
	}
	return f, nil
}

// ChoiceType restricts the value to a fixed set of strings.
type ChoiceType struct {
	Choices       []string
	CaseSensitive bool
}

func (ChoiceType) TypeName() string { return "choice" }

func (t ChoiceType) Convert(value any) (any, error) {
	s := fmt.Sprintf("%v", value)
	for _, c := range t.Choices {
		if c == s {
			return c, nil
		}
		if !t.CaseSensitive && strings.EqualFold(c, s) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%q is not one of %s", s, strings.Join(t.Choices, ", "))
}

// PathMode selects what a PathType accepts.
type PathMode int

const (
	PathFile PathMode = 1 << iota
	PathDir
)

// PathType is a filesystem path. Readable means "-" stands for stdin,
// which the resolution pipeline treats as a deferred modal input.
type PathType struct {
	Mode      PathMode
	MustExist bool
	Readable  bool
}

func (t PathType) TypeName() string {
	switch t.Mode {
	case PathFile:
		return "file"
	case PathDir:
		return "directory"
	}
	return "path"
}

func (t PathType) Convert(value any) (any, error) {
	s := fmt.Sprintf("%v", value)
	if s == "-" && t.Readable {
		return s, nil
	}
	if t.MustExist {
		info, err := os.Stat(s)
		if err != nil {
			return nil, fmt.Errorf("path %q does not exist", s)
		}
		if t.Mode == PathFile && info.IsDir() {
			return nil, fmt.Errorf("%q is a directory, not a file", s)
		}
		if t.Mode == PathDir && !info.IsDir() {
			return nil, fmt.Errorf("%q is a file, not a directory", s)
		}
	}
	return s, nil
}

// DateTimeType parses timestamps against an ordered format list.
// The last format doubles as the preferred display format.
type DateTimeType struct {
	Formats []string
}

// DefaultDateTimeFormats matches the usual date, date-time pair.
var DefaultDateTimeFormats = []string{"2006-01-02", "2006-01-02 15:04:05"}

func (DateTimeType) TypeName() string { return "datetime" }

func (t DateTimeType) formats() []string {
	if len(t.Formats) == 0 {
		return DefaultDateTimeFormats
	}
	return t.Formats
}

// DisplayFormat is the format a fresh control renders with.
func (t DateTimeType) DisplayFormat() string {
	f := t.formats()
	return f[len(f)-1]
}

func (t DateTimeType) Convert(value any) (any, error) {
	if ts, ok := value.(time.Time); ok {
		return ts, nil
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", value))
	for _, layout := range t.formats() {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return nil, fmt.Errorf("%q does not match any of the formats %s",
		s, strings.Join(t.formats(), ", "))
}

// TupleType is a fixed-arity heterogeneous composite. Convert expects a
// sequence of exactly len(Types) members and converts each member through
// its declared type.
type TupleType struct {
	Types []ParamType
}

func (TupleType) TypeName() string { return "tuple" }

func (t TupleType) Convert(value any) (any, error) {
	members, err := AsSequence(value)
	if err != nil {
		return nil, err
	}
	if len(members) != len(t.Types) {
		return nil, fmt.Errorf("expected %d values, got %d", len(t.Types), len(members))
	}
	out := make([]any, len(members))
	for i, m := range members {
		converted, err := t.Types[i].Convert(m)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}

// CustomType wraps a caller-supplied conversion function.
type CustomType struct {
	Name string
	Func func(value any) (any, error)
}

func (t CustomType) TypeName() string {
	if t.Name == "" {
		return "custom"
	}
	return t.Name
}

func (t CustomType) Convert(value any) (any, error) {
	if t.Func == nil {
		return value, nil
	}
	return t.Func(value)
}

// AsSequence normalizes the sequence shapes that reach composite controls.
func AsSequence(value any) ([]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected a sequence, got %T", value)
}
