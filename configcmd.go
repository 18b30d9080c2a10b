package climax

import (
	"context"
	"errors"
	"fmt"

	"github.com/mfridman/climax/pkg/command"
)

type configCommand struct {
	rt *Runtime
}

func newConfigCommand(rt *Runtime) Handler {
	return &configCommand{rt: rt}
}

// Execute lists, reads, writes or resets config values depending on the arguments.
func (c *configCommand) Execute(_ context.Context, s *command.State) error {
	store := c.rt.Config
	reset, _ := command.LookupFlag[bool](s, "reset")

	if reset {
		if len(s.Args) == 0 {
			return errors.New("a config key is required with --reset")
		}
		key := s.Args[0]
		if err := store.Reset(key); err != nil {
			return err
		}
		value, _ := store.Get(key)
		c.rt.Logger.Info("config value reset", "key", key, "value", value)
		return nil
	}

	switch len(s.Args) {
	case 0:
		for _, key := range store.Schema().Keys() {
			value, err := store.Get(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.rt.Stdout, "%s = %s\n", c.rt.Style("accent", key), value)
		}
		return nil
	case 1:
		value, err := store.Get(s.Args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.rt.Stdout, value)
		return err
	case 2:
		key, value := s.Args[0], s.Args[1]
		if err := store.Set(key, value); err != nil {
			return err
		}
		c.rt.Logger.Info("config value set", "key", key, "value", value)
		return nil
	default:
		return fmt.Errorf("too many arguments: got %d, want at most 2", len(s.Args))
	}
}
