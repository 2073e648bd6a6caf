package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <points-file>",
		Short: "Re-run fit, validation and export whenever the points file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.watch(ctx, args[0], cmd.OutOrStdout())
		},
	}
}

// watch runs the export pipeline once, then again on every write to path,
// until ctx is done. Editors often replace files instead of writing them,
// so the directory is watched rather than the file.
func (a *app) watch(ctx context.Context, path string, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	rerun := func() {
		st, err := a.runPipeline(path, true)
		report(w, st)
		if err != nil {
			fmt.Fprintf(w, "export skipped: %v\n", err)
		}
	}
	rerun()
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				tracer().Debugf("%s changed: %v", path, event.Op)
				rerun()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			tracer().Errorf("watching %s: %v", path, err)
		}
	}
}
