package controls

import (
	"github.com/cliform-tools/cli/internal/params"
)

// PathControl is a text entry for file/directory paths. The UI layer adds
// the browse affordance; the control only carries the mode. A raw "-" on
// a readable file type means "read from typed input", which defers the
// control's resolution to the modal stage.
type PathControl struct {
	TextControl
}

func newPathControl(p *params.Param, typ params.ParamType, parent Control) *PathControl {
	c := &PathControl{TextControl: *newTextControl(KindPath, p, typ, parent)}
	return c
}

// Mode reports what the underlying type accepts.
func (c *PathControl) Mode() params.PathMode {
	if t, ok := c.typ.(params.PathType); ok {
		if t.Mode == 0 {
			return params.PathFile | params.PathDir
		}
		return t.Mode
	}
	return params.PathFile | params.PathDir
}

// WantsStdin reports whether resolution must be deferred for a modal
// input prompt.
func (c *PathControl) WantsStdin() bool {
	t, ok := c.typ.(params.PathType)
	return ok && t.Readable && c.text == "-"
}

// CmdlineFragment renders nothing for an empty path; an empty token would
// not survive re-parsing.
func (c *PathControl) CmdlineFragment() string {
	if c.IsEmpty() {
		return ""
	}
	return cmdlineFragment(c)
}
