package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [directory]",
		Short: "Re-lint source files as they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runWatch(cmd, dir)
		},
	}
}

func runWatch(cmd *cobra.Command, dir string) error {
	cfg, err := loadConfig(cmd.Flags(), []string{dir})
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	addDirs := func(root string) error {
		return filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() {
				return nil
			}
			if cfg.Ignored(p) {
				return filepath.SkipDir
			}
			return watcher.Add(p)
		})
	}
	if err := addDirs(dir); err != nil {
		return err
	}

	reporter := NewReporter(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					// New directories need explicit registration.
					_ = addDirs(event.Name)
					continue
				}
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !cfg.IsSourceFile(event.Name) || cfg.Ignored(event.Name) {
				continue
			}
			// Fresh runner per change so edited imports are re-resolved
			// instead of served from the previous run's cache.
			runner := NewRunner(cfg)
			errs, lintErr := runner.LintFile(event.Name)
			if lintErr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), lintErr)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "-- %s\n", event.Name)
			reporter.Report(errs)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), watchErr)
		}
	}
}
