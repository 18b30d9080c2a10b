// Package command is the argument parsing engine behind climax. It models a tree of commands,
// each owning a [pflag.FlagSet], parses POSIX style arguments against the path of commands that
// were selected, renders grouped help output, and runs the selected command.
//
// Flags of every command on the selected path are visible to the terminal command, so flags
// declared on the root behave as global flags. Flags and positional arguments may be interspersed;
// everything after a literal "--" is passed through as positional arguments.
package command
