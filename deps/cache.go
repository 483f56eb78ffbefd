package deps

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// IgniteCache connects redis when cache.redis is set. An unreachable redis
// only disables caching.
func IgniteCache(container Deps) (Deps, error) {
	address := container.Config().UString("cache.redis")
	if address == "" {
		return container, nil
	}

	client := redis.NewClient(&redis.Options{Addr: address})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warningf("redis unavailable, cache disabled	address=%s err=%v", address, err)
		client.Close()
		return container, nil
	}

	container.CacheProvider = client
	return container, nil
}
