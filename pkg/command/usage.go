package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mfridman/climax/pkg/textutil"
)

const (
	helpWidth   = 80
	ownGroup    = "Options:"
	globalGroup = "Global Flags:"
)

// ShowHelp writes the help text of c to w.
func ShowHelp(c *Command, w io.Writer) {
	fmt.Fprintln(w, Usage(c))
}

// Usage returns the help text of c, honoring [Command.UsageFunc].
func Usage(c *Command) string {
	if c == nil {
		return ""
	}
	if c.UsageFunc != nil {
		return c.UsageFunc(c)
	}
	return DefaultUsage(c)
}

// DefaultUsage renders the help text of c: header, description, usage line, subcommands and the
// flags visible to c grouped by their help section.
func DefaultUsage(c *Command) string {
	var b strings.Builder

	if c.Header != "" {
		b.WriteString(strings.TrimRight(c.Header, "\n"))
		b.WriteString("\n\n")
	}
	if c.ShortHelp != "" {
		for _, line := range textutil.Wrap(c.ShortHelp, helpWidth) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(c.heading("Usage:") + "\n")
	usage := c.Usage
	if usage == "" {
		usage = c.Path()
		if c.Flags != nil && c.Flags.HasAvailableFlags() {
			usage += " [flags]"
		}
		if len(c.SubCommands) > 0 {
			usage += " <command>"
		}
	}
	b.WriteString("  " + usage + "\n\n")

	if len(c.SubCommands) > 0 {
		rows := make([][2]string, 0, len(c.SubCommands))
		for _, sub := range c.SubCommands {
			rows = append(rows, [2]string{sub.Name, sub.ShortHelp})
		}
		b.WriteString(c.heading("Commands:") + "\n")
		b.WriteString(textutil.Columns(rows, 2, 4, helpWidth))
		b.WriteString("\n")
	}

	for _, group := range groupFlags(c) {
		b.WriteString(c.heading(group.name) + "\n")
		b.WriteString(textutil.Columns(group.rows, 2, 4, helpWidth))
		b.WriteString("\n")
	}

	if len(c.SubCommands) > 0 {
		fmt.Fprintf(&b, "Use \"%s [command] --help\" for more information about a command.\n", c.Path())
	}
	return strings.TrimRight(b.String(), "\n")
}

type flagGroupRows struct {
	name string
	rows [][2]string
}

// groupFlags collects the flags visible to c, the command's own first, in definition order.
func groupFlags(c *Command) []flagGroupRows {
	path := []*Command{c}
	if c.state != nil && len(c.state.commandPath) > 0 && c.state.Command() == c {
		path = c.state.commandPath
	}

	var groups []flagGroupRows
	index := map[string]int{}
	seen := map[string]bool{}
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Flags == nil {
			continue
		}
		fallback := ownGroup
		if i < len(path)-1 {
			fallback = globalGroup
		}
		path[i].Flags.VisitAll(func(f *pflag.Flag) {
			if f.Hidden || seen[f.Name] {
				return
			}
			seen[f.Name] = true
			name := flagGroup(f, fallback)
			at, ok := index[name]
			if !ok {
				at = len(groups)
				index[name] = at
				groups = append(groups, flagGroupRows{name: name})
			}
			groups[at].rows = append(groups[at].rows, [2]string{flagName(f), flagDescription(f)})
		})
	}
	return groups
}

func flagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return "    --" + f.Name
}

func flagDescription(f *pflag.Flag) string {
	parts := []string{f.Usage}
	switch t := f.Value.Type(); t {
	case "bool":
		parts = append(parts, "[boolean]")
	case "choice":
		if cv, ok := f.Value.(*ChoiceValue); ok {
			parts = append(parts, "[choices: "+quoteAll(cv.Choices())+"]")
		}
	default:
		parts = append(parts, "["+t+"]")
	}
	if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" && f.DefValue != "[]" {
		parts = append(parts, "[default: "+f.DefValue+"]")
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
