package lexicon

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the dictionary files and calls onChange with a freshly
// loaded lexicon each time one of them is written. It runs until ctx is
// cancelled.
//
// If a reload fails the error is logged and the previous lexicon remains
// active — Watch does not call onChange.
func Watch(ctx context.Context, logger *slog.Logger, normalize Normalizer, onChange func(*Lexicon), paths ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return err
		}
	}

	logger.Info("watching charged dictionaries", "paths", paths)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often save via rename, so catch Create along with Write.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			lex, err := Load(normalize, paths...)
			if err != nil {
				logger.Error("dictionary reload failed, keeping previous lexicon", "error", err)
				continue
			}

			logger.Info("charged dictionaries reloaded", "words", lex.Len())
			onChange(lex)

			// Re-add in case an atomic save replaced the inode.
			_ = watcher.Add(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("dictionary watcher error", "error", err)
		}
	}
}
