package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
)

// ServiceAccountClient reads the service account key file and returns an
// HTTP client authorized for the given scopes. Sheets and Drive share the
// same key; they just ask for different scopes.
func ServiceAccountClient(ctx context.Context, credentialsPath string, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account file: %w", err)
	}

	return config.Client(ctx), nil
}
