package ports

import (
	"context"

	"github.com/bnema/fishpi-cli/internal/domain"
)

type ConfigRepository interface {
	Load(ctx context.Context) (domain.RuntimeConfig, error)
	Save(ctx context.Context, cfg domain.RuntimeConfig) error
}
