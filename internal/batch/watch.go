package batch

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/amudkip/uimbatch/internal/logger"
)

// Watcher converts UIM files as they appear or change in a source
// directory, keeping an output directory of JSON/text pairs current.
type Watcher struct {
	fsw     *fsnotify.Watcher
	outDir  string
	invertY bool
	done    chan struct{}
}

// NewWatcher watches srcDir (non-recursively) and converts into outDir.
func NewWatcher(srcDir, outDir string, invertY bool) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(srcDir); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:     fsw,
		outDir:  outDir,
		invertY: invertY,
		done:    make(chan struct{}),
	}, nil
}

// Run processes filesystem events until Close is called. Conversion
// failures are logged and do not stop the loop; a new file is often
// seen mid-write and converts cleanly on the following write event.
func (w *Watcher) Run() error {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))
		case <-w.done:
			return nil
		}
	}
}

// handle converts the file behind a single create or write event.
func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}
	if !strings.EqualFold(filepath.Ext(ev.Name), ".json") {
		return
	}
	if err := ConvertFile(ev.Name, w.outDir, w.invertY); err != nil {
		logger.Warn("watch conversion failed",
			zap.String("file", ev.Name),
			zap.Error(err))
		return
	}
	logger.Info("converted", zap.String("file", filepath.Base(ev.Name)))
}

// Close stops the event loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
