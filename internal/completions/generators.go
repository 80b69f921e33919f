package completions

import (
	"fmt"
	"io"
	"strings"

	"github.com/brickyard-dev/brick/internal/dispatchers"
)

// Write writes the completion script of the tree rooted at root.
func Write(w io.Writer, root *dispatchers.DispatchNode, shell Shell) error {
	commands := ExtractCommands(root)

	var script string
	switch shell {
	case ShellBash:
		script = GenerateBash(commands)
	case ShellZsh:
		script = GenerateZsh(commands)
	case ShellFish:
		script = GenerateFish(commands)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := io.WriteString(w, script)
	return err
}

func binaryName(commands []CommandInfo) string {
	if len(commands) == 0 || len(commands[0].Path) == 0 {
		return "brick"
	}
	return commands[0].Path[0]
}

func flagWords(flags []FlagInfo) []string {
	var words []string
	for _, f := range flags {
		words = append(words, f.Names...)
	}
	return words
}

// GenerateBash produces a script for complete -F. Completion is chosen by
// the non-flag words typed so far.
func GenerateBash(commands []CommandInfo) string {
	bin := binaryName(commands)
	fn := "_" + strings.ReplaceAll(bin, "-", "_") + "_completions"

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    local i cmd=\"\"\n")
	b.WriteString("    for ((i=1; i<COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	b.WriteString("            -*) ;;\n")
	b.WriteString("            *) cmd=\"${cmd:+$cmd }${COMP_WORDS[i]}\" ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range commands {
		words := append(append([]string{}, c.Subcommands...), flagWords(c.Flags)...)
		if len(c.Subcommands) == 0 {
			words = append(words, "--help")
		}
		key := strings.Join(c.Path[1:], " ")
		fmt.Fprintf(&b, "        %q)\n", key)
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
		b.WriteString("            ;;\n")
	}

	b.WriteString("        *)\n")
	b.WriteString("            COMPREPLY=()\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -o default -F %s %s\n", fn, bin)
	return b.String()
}

func zshEscape(s string) string {
	r := strings.NewReplacer(":", `\:`, "'", `'\''`, "[", "(", "]", ")")
	return r.Replace(s)
}

func zshFlagSpecs(flags []FlagInfo) []string {
	var specs []string
	for _, f := range flags {
		for _, name := range f.Names {
			spec := "'" + name + "[" + zshEscape(f.Description) + "]"
			if f.HasValue {
				spec += ":value:_files"
			}
			specs = append(specs, spec+"'")
		}
	}
	return specs
}

func zshDescribe(b *strings.Builder, indent string, commands []CommandInfo, c CommandInfo) {
	fmt.Fprintf(b, "%slocal -a subcommands\n", indent)
	fmt.Fprintf(b, "%ssubcommands=(\n", indent)
	for _, name := range c.Subcommands {
		child := FindCommand(commands, append(append([]string{}, c.Path...), name))
		summary := ""
		if child != nil {
			summary = child.Summary
		}
		fmt.Fprintf(b, "%s    '%s:%s'\n", indent, name, zshEscape(summary))
	}
	fmt.Fprintf(b, "%s)\n", indent)
	fmt.Fprintf(b, "%s_describe 'command' subcommands\n", indent)
}

// GenerateZsh produces a #compdef script.
func GenerateZsh(commands []CommandInfo) string {
	bin := binaryName(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)

	fmt.Fprintf(&b, "_%s_commands() {\n", bin)
	if len(commands) > 0 {
		zshDescribe(&b, "    ", commands, commands[0])
	} else {
		b.WriteString("    local -a subcommands\n    _describe 'command' subcommands\n")
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", bin)
	b.WriteString("    local context state line\n")
	b.WriteString("    _arguments -C \\\n")
	if len(commands) > 0 {
		for _, spec := range zshFlagSpecs(commands[0].Flags) {
			fmt.Fprintf(&b, "        %s \\\n", spec)
		}
	}
	fmt.Fprintf(&b, "        '1: :_%s_commands' \\\n", bin)
	b.WriteString("        '*:: :->args'\n\n")
	b.WriteString("    case $state in\n")
	b.WriteString("        args)\n")
	b.WriteString("            case $words[1] in\n")

	for _, c := range commands {
		if len(c.Path) != 2 {
			continue
		}
		fmt.Fprintf(&b, "                %s)\n", c.Name)
		if len(c.Subcommands) > 0 {
			zshDescribe(&b, "                    ", commands, c)
		} else {
			specs := append(zshFlagSpecs(c.Flags), "'*:file:_files'")
			fmt.Fprintf(&b, "                    _arguments %s\n", strings.Join(specs, " "))
		}
		b.WriteString("                    ;;\n")
	}

	b.WriteString("            esac\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "_%s \"$@\"\n", bin)
	return b.String()
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

func fishFlag(name string) string {
	switch {
	case strings.HasPrefix(name, "--"):
		return "-l " + strings.TrimPrefix(name, "--")
	default:
		return "-s " + strings.TrimPrefix(name, "-")
	}
}

// GenerateFish produces complete -c lines.
func GenerateFish(commands []CommandInfo) string {
	bin := binaryName(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, c := range commands {
		var cond string
		if len(c.Path) <= 1 {
			cond = "__fish_use_subcommand"
		} else {
			cond = "__fish_seen_subcommand_from " + c.Name
		}

		for _, name := range c.Subcommands {
			child := FindCommand(commands, append(append([]string{}, c.Path...), name))
			summary := ""
			if child != nil {
				summary = child.Summary
			}
			fmt.Fprintf(&b, "complete -c %s -n '%s' -a '%s' -d '%s'\n", bin, cond, name, fishEscape(summary))
		}

		for _, f := range c.Flags {
			for _, name := range f.Names {
				line := fmt.Sprintf("complete -c %s -n '%s' %s", bin, cond, fishFlag(name))
				if f.HasValue {
					line += " -r"
				}
				fmt.Fprintf(&b, "%s -d '%s'\n", line, fishEscape(f.Description))
			}
		}
	}

	return b.String()
}
