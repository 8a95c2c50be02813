package optin

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, o *OptIn) error
	List(ctx context.Context) ([]*OptIn, error)
}
