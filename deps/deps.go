package deps

import (
	"github.com/getsentry/raven-go"
	"github.com/go-redis/redis/v8"
	newrelic "github.com/newrelic/go-agent"
	"github.com/olebedev/config"
	"github.com/op/go-logging"
	"github.com/tryanzu/orders/core/store"
	"github.com/tryanzu/orders/mongo"
)

type Deps struct {
	ConfigProvider   *config.Config
	LoggerProvider   *logging.Logger
	StoreProvider    store.Store
	DatabaseProvider *mongo.Service
	CacheProvider    *redis.Client
	ErrorsProvider   *raven.Client
	TracerProvider   newrelic.Application
}

func (d Deps) Config() *config.Config {
	return d.ConfigProvider
}

func (d Deps) Log() *logging.Logger {
	return d.LoggerProvider
}

func (d Deps) Store() store.Store {
	return d.StoreProvider
}

// Mgo is nil unless the store is backed by mongodb.
func (d Deps) Mgo() *mongo.Service {
	return d.DatabaseProvider
}

// Cache is nil when no redis address is configured.
func (d Deps) Cache() *redis.Client {
	return d.CacheProvider
}

func (d Deps) Errors() *raven.Client {
	return d.ErrorsProvider
}

// Tracer is nil when no new relic license is configured.
func (d Deps) Tracer() newrelic.Application {
	return d.TracerProvider
}

// Auditor of natural key collisions, when the store supports it.
func (d Deps) Auditor() (store.Auditor, bool) {
	auditor, ok := d.StoreProvider.(store.Auditor)
	return auditor, ok
}

// Close releases connections opened by the ignitors.
func (d Deps) Close() {
	if d.DatabaseProvider != nil {
		d.DatabaseProvider.Close()
	}
	if d.CacheProvider != nil {
		d.CacheProvider.Close()
	}
	if d.ErrorsProvider != nil {
		d.ErrorsProvider.Wait()
	}
}
