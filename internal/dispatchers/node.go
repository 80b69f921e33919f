package dispatchers

import "context"

// CommandFunc runs a command with its positional arguments and flags. When
// err is nil the returned int is the exit code, zero meaning success.
type CommandFunc func(ctx context.Context, args []string, flags *ParsedFlags) (int, error)

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

// FlagDescriptor declares a flag. The first name is canonical; ParsedFlags
// reports every alias under it. A flag with a ValueHint takes a value.
type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
	// Variadic lifts the upper bound on positional arguments.
	Variadic bool
}

type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}

// IsGroup reports whether the node only selects between child commands.
func (n *DispatchNode) IsGroup() bool {
	return n.Action == nil && len(n.Children) > 0
}
