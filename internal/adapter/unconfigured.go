package adapter

import (
	"context"

	"github.com/MKhiriev/co-script/models"
)

// unconfiguredClient is used when no provider API key is set.
type unconfiguredClient struct{}

func (unconfiguredClient) Complete(context.Context, models.CompletionRequest) (string, error) {
	return "", ErrNotConfigured
}
