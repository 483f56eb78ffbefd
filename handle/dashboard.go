package handle

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olebedev/config"
	"github.com/tryanzu/orders/board/dashboard"
	"github.com/tryanzu/orders/deps"
)

//go:embed templates
var templates embed.FS

var dashboardPage = template.Must(template.ParseFS(templates, "templates/dashboard.html"))

const dashboardCacheKey = "dashboard.board"

type DashboardAPI struct {
	Deps   *deps.Deps     `inject:""`
	Config *config.Config `inject:""`

	// Reader defaults to the read API found at dashboard.api_url.
	Reader dashboard.Reader
}

func (di *DashboardAPI) Get(c *gin.Context) {
	board := di.board(c.Request.Context())

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := dashboardPage.Execute(c.Writer, board); err != nil {
		log.Errorf("dashboard render failed	err=%v", err)
	}
}

func (di *DashboardAPI) reader() dashboard.Reader {
	if di.Reader == nil {
		di.Reader = dashboard.NewClient(di.Config.UString("dashboard.api_url", "http://localhost:3200/api/orders"))
	}
	return di.Reader
}

// board is served from redis when cached. Only complete boards are cached so
// an outage is not remembered past the request that saw it.
func (di *DashboardAPI) board(ctx context.Context) dashboard.Board {
	cache := di.Deps.Cache()
	if cache != nil {
		if cached, err := cache.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var board dashboard.Board
			if err := json.Unmarshal(cached, &board); err == nil {
				return board
			}
		}
	}

	board := dashboard.Collect(ctx, di.reader())
	if cache != nil && board.Complete() {
		ttl := time.Duration(di.Config.UInt("cache.ttl", 60)) * time.Second
		encoded, _ := json.Marshal(board)
		if err := cache.Set(ctx, dashboardCacheKey, encoded, ttl).Err(); err != nil {
			log.Warningf("dashboard cache write failed	err=%v", err)
		}
	}
	return board
}
