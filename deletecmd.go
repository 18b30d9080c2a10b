package climax

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfridman/climax/pkg/command"
)

type deleteEverythingCommand struct {
	rt *Runtime
}

func newDeleteEverythingCommand(rt *Runtime) Handler {
	return &deleteEverythingCommand{rt: rt}
}

// Execute removes the config directory, the config file and the log file. Paths that do not
// exist are skipped.
func (d *deleteEverythingCommand) Execute(_ context.Context, _ *command.State) error {
	for _, path := range d.paths() {
		if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
			d.rt.Logger.Verbose("nothing to remove", "path", path)
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
		d.rt.Logger.Info("removed", "path", path)
	}
	return nil
}

func (d *deleteEverythingCommand) paths() []string {
	var paths []string
	dir := d.rt.ConfigDir
	// Never remove a filesystem root.
	if dir != "" && filepath.Dir(dir) != dir {
		paths = append(paths, dir)
	}
	for _, p := range []string{d.rt.Settings.ConfigPath, d.rt.Settings.LogFile} {
		if p == "" || (len(paths) > 0 && within(dir, p)) {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
