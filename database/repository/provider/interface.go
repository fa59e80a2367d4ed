package providerRepo

import (
	"context"
	"errors"

	"guidely/models"
)

// ErrNotFound is returned when a provider id does not exist.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository manages provider profiles and the admin verification
// workflow state attached to them.
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	GetByID(ctx context.Context, providerID string) (*models.Provider, error)
	ListByVerificationStatus(ctx context.Context, status models.VerificationStatus) ([]models.Provider, error)
	ListIDs(ctx context.Context) ([]string, error)
	UpdateVerification(ctx context.Context, providerID string, status models.VerificationStatus, notes string) (*models.Provider, error)
	AddVerificationDocument(ctx context.Context, providerID string, doc models.VerificationDocument) error
	EnsureIndexes() error
}
