package ports

import "context"

type HTTPServer interface {
	Start(addr string) error
	Shutdown(ctx context.Context) error
}
