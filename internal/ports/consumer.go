package ports

import (
	"context"
)

type RegistrationConsumer interface {
	Start(ctx context.Context)
	Close() error
}
