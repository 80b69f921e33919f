package dispatchers

import (
	"fmt"
	"strings"
)

// NewNode creates a node and registers it under parent. Registering the same
// name twice under one parent panics: the table is built once at startup and
// a duplicate is a programming error.
func NewNode(
	name string,
	parent *DispatchNode,
	summary string,
	description string,
	usage string,
	flags []FlagDescriptor,
	args []ArgSpec,
	action CommandFunc,
) *DispatchNode {

	node := &DispatchNode{
		Name:        name,
		Summary:     summary,
		Description: description,
		Usage:       usage,
		Flags:       flags,
		Args:        args,
		Action:      action,
		Children:    make(map[string]*DispatchNode),
	}

	if parent == nil {
		node.Path = []string{name}
		return node
	}

	if _, exists := parent.Children[name]; exists {
		panic(fmt.Sprintf("dispatchers: command %q registered twice", strings.Join(parent.Path, " ")+" "+name))
	}

	node.Path = make([]string, 0, len(parent.Path)+1)
	node.Path = append(node.Path, parent.Path...)
	node.Path = append(node.Path, name)
	parent.Children[name] = node

	return node
}

func Root(spec RootSpec) *DispatchNode {
	return NewNode(
		spec.Name,
		nil,
		spec.Summary,
		"",
		spec.Usage,
		spec.Flags,
		nil,
		nil,
	)
}

func Group(spec GroupSpec) *DispatchNode {
	node := NewNode(
		spec.Name,
		spec.Parent,
		spec.Summary,
		"",
		spec.Usage,
		nil,
		nil,
		nil,
	)

	node.Category = spec.Category
	return node
}

func Command(spec CommandSpec) *DispatchNode {
	node := NewNode(
		spec.Name,
		spec.Parent,
		spec.Summary,
		spec.Description,
		spec.Usage,
		spec.Flags,
		spec.Args,
		spec.Action,
	)

	node.Category = spec.Category
	return node
}
