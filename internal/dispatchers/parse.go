package dispatchers

import (
	"strings"

	"github.com/brickyard-dev/brick/internal/failure"
)

const defaultSuggestionsCount = 3

// Root flag names understood by Parse.
const (
	FlagHelp    = "--help"
	FlagVersion = "--version"
	FlagVerbose = "--verbose"
)

// Invocation is the result of parsing one set of process arguments.
type Invocation struct {
	Version bool
	Verbose bool
	Help    bool

	// Command is the selected command, nil when only root flags were given.
	Command *DispatchNode
	// Args are the positional arguments left for the command.
	Args []string
	// Flags are the command's own flags.
	Flags *ParsedFlags
}

// TopLevel returns the name of the top-level command selected, or "".
func (inv *Invocation) TopLevel() string {
	if inv == nil || inv.Command == nil || len(inv.Command.Path) < 2 {
		return ""
	}
	return inv.Command.Path[1]
}

// Parse matches args against the tree rooted at root. Any mismatch is a
// *failure.Error of kind KindUsageMalformed carrying the relevant usage text.
func Parse(root *DispatchNode, args []string) (*Invocation, error) {
	inv := &Invocation{Flags: NewParsedFlags(nil)}

	i, err := parseRootFlags(root, args, inv)
	if err != nil {
		return nil, err.WithUsage(HelpText(root, root))
	}

	node := root
	for i < len(args) {
		tok := args[i]
		if strings.HasPrefix(tok, "-") && tok != "-" {
			break
		}

		child, ok := node.Children[tok]
		if !ok {
			if node == root || node.IsGroup() {
				suggestions := FindSimilarCommands(tok, node, defaultSuggestionsCount)
				name := strings.Join(append(append([]string{}, node.Path[1:]...), tok), " ")
				return nil, failure.UnknownCommand(name, suggestions...).WithUsage(HelpText(node, root))
			}
			break
		}

		node = child
		i++
		if !node.IsGroup() {
			break
		}
	}

	if node != root {
		inv.Command = node
	}

	positional, flags, ferr := parseCommandFlags(root, node, args[i:], inv)
	if ferr != nil {
		return nil, ferr.WithUsage(HelpText(node, root))
	}
	inv.Args = positional
	inv.Flags = NewParsedFlags(flags)

	if inv.Help || inv.Version || node == root {
		if node == root && len(positional) > 0 {
			return nil, failure.UnexpectedArguments(positional).WithUsage(HelpText(root, root))
		}
		return inv, nil
	}

	if node.IsGroup() {
		return nil, failure.MissingArgument("command").WithUsage(HelpText(node, root))
	}

	if err := validateArgs(node.Args, positional); err != nil {
		return nil, err.WithUsage(HelpText(node, root))
	}

	return inv, nil
}

// parseRootFlags consumes the flags that precede the command name and
// returns the index of the first unconsumed token.
func parseRootFlags(root *DispatchNode, args []string, inv *Invocation) (int, *failure.Error) {
	i := 0
	for ; i < len(args); i++ {
		tok := args[i]
		if tok == "--" {
			return i + 1, nil
		}
		if !strings.HasPrefix(tok, "-") || tok == "-" {
			return i, nil
		}
		if err := applyRootFlag(root, tok, inv); err != nil {
			return i, err
		}
	}
	return i, nil
}

// applyRootFlag records a root flag. Root flags are booleans and cannot be
// negated.
func applyRootFlag(root *DispatchNode, tok string, inv *Invocation) *failure.Error {
	name, _, hasValue := strings.Cut(tok, "=")

	desc := lookupFlag(root.Flags, name)
	if desc == nil {
		if base, ok := strings.CutPrefix(name, "--no-"); ok && lookupFlag(root.Flags, "--"+base) != nil {
			return failure.NegatedFlag(base)
		}
		return failure.InvalidFlag(tok)
	}
	if hasValue {
		return failure.InvalidFlag(tok)
	}

	switch desc.Names[0] {
	case FlagHelp:
		inv.Help = true
	case FlagVersion:
		inv.Version = true
	case FlagVerbose:
		inv.Verbose = true
	}
	return nil
}

// parseCommandFlags separates the tokens after the command name into
// positional arguments and canonical flag strings. Root flags are accepted
// here too.
func parseCommandFlags(root, node *DispatchNode, tokens []string, inv *Invocation) ([]string, []string, *failure.Error) {
	var positional, flags []string
	onlyPositional := false

	for j := 0; j < len(tokens); j++ {
		tok := tokens[j]
		if onlyPositional || tok == "-" || !strings.HasPrefix(tok, "-") {
			positional = append(positional, tok)
			continue
		}
		if tok == "--" {
			onlyPositional = true
			continue
		}

		name, value, hasValue := strings.Cut(tok, "=")

		desc := lookupFlag(node.Flags, name)
		if desc == nil || node == root {
			if err := applyRootFlag(root, tok, inv); err != nil {
				return nil, nil, err
			}
			continue
		}

		canonical := desc.Names[0]
		if desc.ValueHint == "" {
			if hasValue {
				return nil, nil, failure.InvalidFlag(tok)
			}
			flags = append(flags, canonical)
			continue
		}

		if !hasValue {
			if j+1 >= len(tokens) {
				return nil, nil, failure.MissingFlagValue(name)
			}
			j++
			value = tokens[j]
		}
		flags = append(flags, canonical+"="+value)
	}

	return positional, flags, nil
}

func lookupFlag(flags []FlagDescriptor, name string) *FlagDescriptor {
	for i := range flags {
		for _, n := range flags[i].Names {
			if n == name {
				return &flags[i]
			}
		}
	}
	return nil
}

func validateArgs(spec []ArgSpec, args []string) *failure.Error {
	requiredCount := 0
	for _, a := range spec {
		if a.Required {
			requiredCount++
		}
	}

	if len(args) < requiredCount {
		if len(args) >= len(spec) {
			return failure.MissingArgument("argument")
		}
		return failure.MissingArgument(spec[len(args)].Name)
	}

	variadic := len(spec) > 0 && spec[len(spec)-1].Variadic
	if !variadic && len(args) > len(spec) {
		return failure.UnexpectedArguments(args[len(spec):])
	}

	return nil
}
