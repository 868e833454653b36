package main

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/contextpilot/pilot/ignore"
)

// debounceInterval batches bursts of filesystem events (editor saves,
// git checkouts) into a single rebuild.
const debounceInterval = 400 * time.Millisecond

// watchAndRun reruns the prompt build whenever a file under root
// changes. It blocks until interrupted.
func watchAndRun(logger *zap.Logger, root, outputFile string, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, root); err != nil {
		return err
	}
	logger.Info("watching for changes", zap.String("root", root))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var debounce *time.Timer
	var fire <-chan time.Time

	outputBase := filepath.Base(outputFile)

	for {
		select {
		case <-sig:
			logger.Info("stopping watch")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Rewriting our own output would loop forever.
			if filepath.Base(event.Name) == outputBase {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			// New directories need their own watch.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatchDirs(watcher, event.Name)
				}
			}
			logger.Debug("change detected", zap.String("path", event.Name))
			if debounce == nil {
				debounce = time.NewTimer(debounceInterval)
				fire = debounce.C
			} else {
				debounce.Reset(debounceInterval)
			}

		case <-fire:
			debounce = nil
			fire = nil
			if err := run(); err != nil {
				// Keep watching; a transient error (say, an
				// emptied project mid-refactor) may clear up.
				logger.Error("rebuild failed", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}

// addWatchDirs registers root and every non-ignored subdirectory with
// the watcher. Ignored directories like .git or node_modules would
// otherwise flood the event stream.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	filter := ignore.New()
	if err := filter.LoadProjectFile(root); err != nil {
		return err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	return filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			return nil
		}
		if rel != "." && filter.IsExcluded(filepath.ToSlash(rel), true) {
			return filepath.SkipDir
		}
		if addErr := watcher.Add(path); addErr != nil {
			return fmt.Errorf("watch %s: %w", path, addErr)
		}
		return nil
	})
}
