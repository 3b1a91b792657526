package cli

import (
	"context"
	"fmt"

	internalApp "github.com/felixgeelhaar/sangam/internal/app"
)

// app is the global CLI application container
var app *internalApp.Container

// SetApp sets the global CLI application container.
func SetApp(c *internalApp.Container) {
	app = c
}

// GetApp returns the global CLI application container.
func GetApp() *internalApp.Container {
	return app
}

// CurrentUserID resolves the signed-in user through the identity provider.
func CurrentUserID(ctx context.Context) (string, error) {
	a := GetApp()
	if a == nil {
		return "", fmt.Errorf("application not initialized")
	}
	userID, err := a.Identity.CurrentUserID(ctx)
	if err != nil {
		return "", err
	}
	return userID.String(), nil
}
