package dispatchers

type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Usage       string
	Description string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}
