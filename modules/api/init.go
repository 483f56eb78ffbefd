package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/facebookgo/inject"
	"github.com/gin-gonic/contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/olebedev/config"
	"github.com/op/go-logging"
	"github.com/tryanzu/orders/deps"
	"github.com/tryanzu/orders/handle"
)

var log = logging.MustGetLogger("api")

type Module struct {
	Dependencies ModuleDI
	Orders       handle.OrdersAPI
	Dashboard    handle.DashboardAPI
	Middlewares  handle.MiddlewareAPI
}

type ModuleDI struct {
	Config *config.Config `inject:""`
}

// Router with every route and middleware of the api.
func (module *Module) Router() *gin.Engine {
	environment := module.Dependencies.Config.UString("environment", "development")

	// If not development turn debug off
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(module.Middlewares.ErrorTracking())
	router.Use(module.Middlewares.Tracing())
	router.Use(module.Middlewares.CORS())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", module.Dashboard.Get)
	router.GET("/dashboard", module.Dashboard.Get)
	router.GET("/orders", module.Orders.List)
	router.GET("/api/orders", module.Orders.List)
	return router
}

// Run serves the api until an interrupt signal arrives.
func (module *Module) Run(bindTo string) error {
	watcher, err := deps.WatchConfig(deps.EnvFile(), func(conf *config.Config) {
		if err := deps.SetLevel(conf.UString("log.level", "INFO")); err != nil {
			log.Warningf("invalid log level	err=%v", err)
		}
	})
	if err != nil {
		log.Warningf("config file not watched	err=%v", err)
	} else {
		defer watcher.Close()
	}

	// Start the http server as an isolated goroutine.
	srv := &http.Server{
		Addr:    bindTo,
		Handler: module.Router(),
	}
	failed := make(chan error, 1)
	go func() {
		log.Infof("api listening	address=%s", bindTo)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			failed <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	select {
	case err := <-failed:
		return err
	case <-quit:
	}
	log.Info("shutting down api")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (module *Module) Populate(g *inject.Graph) error {
	err := g.Provide(
		&inject.Object{Value: &module.Dependencies},
		&inject.Object{Value: &module.Orders},
		&inject.Object{Value: &module.Dashboard},
		&inject.Object{Value: &module.Middlewares},
	)
	if err != nil {
		return err
	}

	// Populate the DI with the instances
	return g.Populate()
}
