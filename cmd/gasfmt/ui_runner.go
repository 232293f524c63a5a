package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gasfmt/internal/driver"
	"gasfmt/internal/source"
	"gasfmt/internal/ui"
)

type formatOutcome struct {
	fileSet *source.FileSet
	results []driver.FormatResult
	err     error
}

func runFormatWithUI(ctx context.Context, title string, files []string, paths []string, opts driver.FormatOptions) (*source.FileSet, []driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, res, err := driver.FormatPaths(ctx, paths, optsCopy)
		outcomeCh <- formatOutcome{fileSet: fs, results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// если UI упал раньше времени, воркеры не должны застрять на канале
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
