package dict

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch starts a background goroutine that reloads s whenever its source
// XML file is written or replaced (editors commonly rename-over-write,
// which fsnotify reports as Create on the destination path). It runs until
// stop is closed. Reload errors are logged and otherwise swallowed: a
// transient write-in-progress failure shouldn't tear down a running store.
func (s *Store) Watch(stop <-chan struct{}, decomp decomposer, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(s.sourcePath); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-stop:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := s.Reload(decomp); err != nil {
					logger.Error("dictionary reload failed", "path", s.sourcePath, "error", err)
				} else {
					logger.Info("dictionary reloaded", "path", s.sourcePath)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("dictionary watch error", "path", s.sourcePath, "error", err)
			}
		}
	}()

	return nil
}
