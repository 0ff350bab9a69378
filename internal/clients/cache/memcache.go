package cache

import (
	"strconv"

	"github.com/pkg/errors"

	"go.uber.org/zap"
	"max.ks1230/expense-dashboard/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

var defaultBase = 10

// MemcacheClient caches textual analytics reports per user and currency so
// the bot can skip rebuilding them between mutations.
type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(userID int64, currency string) string {
	return strconv.FormatInt(userID, defaultBase) + ":" + currency
}

func (mc *MemcacheClient) CacheReport(userID int64, currency string, report string) error {
	logger.Info("cache report", zap.Int64("userID", userID), zap.String("currency", currency))
	return mc.client.Set(&memcache.Item{
		Key:   formatKey(userID, currency),
		Value: []byte(report)},
	)
}

func (mc *MemcacheClient) GetReport(userID int64, currency string) (string, error) {
	logger.Info("get report from cache", zap.Int64("userID", userID), zap.String("currency", currency))
	item, err := mc.client.Get(formatKey(userID, currency))
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) InvalidateCache(userID int64, currencies []string) error {
	logger.Info("invalidate cache", zap.Int64("userID", userID))

	for _, curr := range currencies {
		err := mc.client.Delete(formatKey(userID, curr))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
