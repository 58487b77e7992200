package service

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/analytics"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/config"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/formatter"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
)

// Debounce window for bursts of filesystem events. Exports are written in
// chunks, so a single download fires several writes.
const debounceDelay = 500 * time.Millisecond

// WatchService regenerates the dashboard when exports change.
type WatchService struct {
	reports *ReportService
}

// NewWatchService creates a new watch service
func NewWatchService() *WatchService {
	return &WatchService{reports: NewReportService()}
}

// Watch blocks, regenerating the dashboard whenever a CSV in the exports
// directory is created, written or renamed. Stops on SIGINT/SIGTERM.
func (ws *WatchService) Watch(f analytics.Filter, topN int, outPath string) error {
	dir := config.GetString("exports.dir")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	// Initial render so the dashboard exists before the first change
	if err := ws.reports.Generate(f, topN, outPath); err != nil {
		formatter.PrintWarning("initial generation failed: %v", err)
	}

	formatter.PrintInfo("Watching %s for export changes (Ctrl-C to stop)", dir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var timer *time.Timer
	timerCh := make(chan struct{}, 1)

	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounceDelay, func() {
			select {
			case timerCh <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isCSV(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Export changed", "file", event.Name, "op", event.Op.String())
			schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", "err", err)

		case <-timerCh:
			if err := ws.reports.Generate(f, topN, outPath); err != nil {
				formatter.PrintError("regeneration failed: %v", err)
			}

		case <-sigCh:
			formatter.PrintInfo("Stopping watcher")
			return nil
		}
	}
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}
