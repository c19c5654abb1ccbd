package ui

import (
	"context"
	"errors"

	"tableflip.dev/desk/pkg/app"
	teaui "tableflip.dev/desk/pkg/tui/app"
)

// UI launches the interactive terminal interface.
type UI struct {
	Service *app.Service
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("can not open ui, no service")
	}
	return teaui.Run(u.Service)
}
