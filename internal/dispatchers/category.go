package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryForm                          // interactive form over a command tree
	CategoryCodec                         // command-string export and import
	CategoryHistory                       // invocation history
	CategoryConfig                        // configuration
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryForm:
		return "work with forms"
	case CategoryCodec:
		return "export and import command strings"
	case CategoryHistory:
		return "inspect past runs"
	case CategoryConfig:
		return "configure cliform"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryForm,
	CategoryCodec,
	CategoryHistory,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
