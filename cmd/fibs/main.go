// Command fibs looks up Fibonacci numbers in a chosen integer type and
// reports where each type runs out of room.
package main

import (
	"context"
	"os"

	"github.com/agbru/fibs/internal/app"
	apperrors "github.com/agbru/fibs/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
