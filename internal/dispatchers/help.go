package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/brickyard-dev/brick/internal/ui/style"
)

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	// get started
	"init": 1,
	"new":  2,
	// manage bricks
	"add":     1,
	"remove":  2,
	"list":    3,
	"get":     4,
	"upgrade": 5,
	// share bricks
	"bundle":   1,
	"unbundle": 2,
	"search":   3,
	"publish":  4,
	// registry account
	"login":  1,
	"logout": 2,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

func usageLine(node *DispatchNode) string {
	if node.Usage != "" {
		return node.Usage
	}
	line := strings.Join(node.Path, " ")
	switch {
	case len(node.Path) == 1:
		line += " <command> [arguments]"
	case node.IsGroup():
		line += " <command>"
	}
	for _, a := range node.Args {
		if a.Required {
			line += " <" + a.Name + ">"
		} else {
			line += " [" + a.Name + "]"
		}
	}
	if len(node.Path) > 1 && len(node.Flags) > 0 {
		line += " [flags]"
	}
	return line
}

func sortByDisplayOrder(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		nameI := strings.Join(nodes[i].Path[1:], " ")
		nameJ := strings.Join(nodes[j].Path[1:], " ")
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		if hasI && hasJ {
			return orderI < orderJ
		}
		if hasI {
			return true
		}
		if hasJ {
			return false
		}
		return nameI < nameJ
	})
}

func writeFlags(out *bytes.Buffer, flags []FlagDescriptor) {
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name = name + " " + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}
}

// HelpText renders the usage of node. The root gets the command overview
// grouped by category.
func HelpText(node *DispatchNode, root *DispatchNode) string {
	var out bytes.Buffer

	if node == root {
		out.WriteString(root.Name)
		out.WriteString(" - ")
		out.WriteString(node.Summary)
		out.WriteString("\n\n")

		out.WriteString("USAGE\n   ")
		out.WriteString(formatUsage(usageLine(node)))
		out.WriteString("\n\n")

		if len(node.Flags) > 0 {
			out.WriteString("FLAGS\n")
			writeFlags(&out, node.Flags)
			out.WriteString("\n")
		}

		grouped := make(map[CommandCategory][]*DispatchNode)
		for _, child := range root.Children {
			grouped[child.Category] = append(grouped[child.Category], child)
		}

		for _, cat := range categoryOrder {
			cmds := grouped[cat]
			if len(cmds) == 0 {
				continue
			}

			out.WriteString(style.Header(cat.String()))
			out.WriteString("\n")

			sortByDisplayOrder(cmds)
			for _, cmd := range cmds {
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", cmd.Name)), cmd.Summary)
			}
			out.WriteString("\n")
		}

		fmt.Fprintf(&out, "Run '%s <command> --help' for more information about a command.\n", root.Name)
		return out.String()
	}

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(usageLine(node)))
	out.WriteString("\n\n")

	if node.Description != "" {
		out.WriteString(node.Description)
		out.WriteString("\n\n")
	}

	if len(node.Children) > 0 {
		out.WriteString("COMMANDS\n")

		children := make([]*DispatchNode, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, child)
		}
		sortByDisplayOrder(children)

		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if len(node.Args) > 0 {
		out.WriteString("ARGUMENTS\n")
		for _, a := range node.Args {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", a.Name)), a.Description)
		}
		out.WriteString("\n")
	}

	if len(node.Flags) > 0 {
		out.WriteString("FLAGS\n")
		writeFlags(&out, node.Flags)
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "Run '%s --help' to see global options.\n", root.Name)
	return out.String()
}
