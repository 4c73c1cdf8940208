package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/user"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

const (
	providersKey = "providers:all"
	providersTTL = 60 * time.Second
)

// CachedUserReader decora um user.Reader com cache Redis da listagem
// de prestadores. GetByID NÃO é cacheado: a flag is_provider participa
// de autorização e não pode ficar defasada.
type CachedUserReader struct {
	inner domain.Reader
	rdb   *redis.Client
	log   *zap.Logger
}

func NewCachedUserReader(
	inner domain.Reader,
	rdb *redis.Client,
	log *zap.Logger,
) *CachedUserReader {
	return &CachedUserReader{
		inner: inner,
		rdb:   rdb,
		log:   log,
	}
}

func (c *CachedUserReader) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *CachedUserReader) ListProviders(
	ctx context.Context,
) ([]models.User, error) {

	if raw, err := c.rdb.Get(ctx, providersKey).Bytes(); err == nil {
		var us []models.User
		if err := json.Unmarshal(raw, &us); err == nil {
			return us, nil
		}
	}

	us, err := c.inner.ListProviders(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(us); err == nil {
		if err := c.rdb.Set(ctx, providersKey, raw, providersTTL).Err(); err != nil {
			// cache indisponível não derruba a listagem
			c.log.Warn("provider cache set failed", zap.Error(err))
		}
	}

	return us, nil
}

// Compile-time check
var _ domain.Reader = (*CachedUserReader)(nil)
