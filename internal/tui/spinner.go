package tui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// WithSpinner runs fn while showing a spinner titled title. Without an
// interactive terminal fn runs directly.
//
// fn runs on its own goroutine and WithSpinner always waits for it to
// return, even when ctx is cancelled and the spinner stops early, so values
// fn writes are safe to read afterwards. fn should honor ctx to return
// promptly on cancellation. fn's error takes precedence over the spinner's.
func WithSpinner(ctx context.Context, title string, fn func(context.Context) error) error {
	if !IsInteractive() {
		return fn(ctx)
	}

	var fnErr error
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		fnErr = fn(ctx)
	}()

	spinErr := runSpinner(ctx, title, func(context.Context) error {
		<-finished
		return nil
	})
	<-finished

	if fnErr != nil {
		return fnErr
	}
	return spinErr
}

// runSpinner is replaced in tests, which have no terminal to draw on.
var runSpinner = func(ctx context.Context, title string, wait func(context.Context) error) error {
	return spinner.New().
		Title(title).
		Context(ctx).
		ActionWithErr(wait).
		Run()
}
