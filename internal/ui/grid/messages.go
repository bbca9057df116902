package grid

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/spangrid/internal/config"
	"github.com/zjrosen/spangrid/internal/log"
	"github.com/zjrosen/spangrid/internal/sheet"
)

// SnapshotMsg carries a freshly loaded sheet.
type SnapshotMsg struct {
	Snapshot *sheet.Snapshot
}

// LoadErrorMsg reports a failed reload. The previous snapshot stays on screen.
type LoadErrorMsg struct {
	Err error
}

type fileChangedMsg struct{}

type themeSavedMsg struct {
	preset string
	err    error
}

func reloadCmd(ctx context.Context, loader *sheet.Loader, path string) tea.Cmd {
	return func() tea.Msg {
		snap, err := loader.Load(ctx, path)
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		return SnapshotMsg{Snapshot: snap}
	}
}

// waitForChange blocks until the watcher reports a change. It returns nil
// once ctx is done or the channel is closed.
func waitForChange(ctx context.Context, changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			return fileChangedMsg{}
		}
	}
}

func saveThemeCmd(path string, theme config.ThemeConfig) tea.Cmd {
	return func() tea.Msg {
		err := config.SaveTheme(path, theme)
		if err != nil {
			log.ErrorErr(log.CatConfig, "saving theme failed", err, "path", path)
		}
		return themeSavedMsg{preset: theme.Preset, err: err}
	}
}
