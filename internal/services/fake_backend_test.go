package services_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"wanderworld/internal/config"
	"wanderworld/internal/models/catalog_models"
	"wanderworld/internal/services"
)

// fakeBackend is an in-process stand-in for the travel agency backend.
type fakeBackend struct {
	mu sync.Mutex

	destinations []catalog_models.Destination
	packages     []catalog_models.Package

	seedStatus     int
	listStatus     int
	inquiryStatus  int
	seedCalls      int
	packageQueries []string
	inquiries      []map[string]interface{}

	// blockPackages, when set for a slug, holds that /packages response until
	// the channel is closed.
	blockPackages map[string]chan struct{}

	server *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fb := &fakeBackend{
		seedStatus:    http.StatusOK,
		listStatus:    http.StatusOK,
		inquiryStatus: http.StatusCreated,
		blockPackages: map[string]chan struct{}{},
	}

	r := gin.New()
	r.POST("/seed", func(c *gin.Context) {
		fb.mu.Lock()
		fb.seedCalls++
		status := fb.seedStatus
		fb.mu.Unlock()
		c.JSON(status, gin.H{"ok": status == http.StatusOK})
	})
	r.GET("/destinations", func(c *gin.Context) {
		fb.mu.Lock()
		defer fb.mu.Unlock()
		if fb.listStatus != http.StatusOK {
			c.JSON(fb.listStatus, gin.H{"detail": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, fb.destinations)
	})
	r.GET("/packages", func(c *gin.Context) {
		slug, hasSlug := c.GetQuery("destination")

		fb.mu.Lock()
		if hasSlug {
			fb.packageQueries = append(fb.packageQueries, slug)
		} else {
			fb.packageQueries = append(fb.packageQueries, "*")
		}
		block := fb.blockPackages[slug]
		fb.mu.Unlock()

		if block != nil {
			<-block
		}

		fb.mu.Lock()
		defer fb.mu.Unlock()
		if fb.listStatus != http.StatusOK {
			c.JSON(fb.listStatus, gin.H{"detail": "unavailable"})
			return
		}
		out := []catalog_models.Package{}
		for _, p := range fb.packages {
			if !hasSlug || p.DestinationSlug == slug {
				out = append(out, p)
			}
		}
		c.JSON(http.StatusOK, out)
	})
	r.POST("/inquire", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		fb.mu.Lock()
		defer fb.mu.Unlock()
		fb.inquiries = append(fb.inquiries, body)
		c.JSON(fb.inquiryStatus, gin.H{"id": "inq-1"})
	})

	fb.server = httptest.NewServer(r)
	t.Cleanup(fb.server.Close)
	return fb
}

func (fb *fakeBackend) config() config.Config {
	cfg, _ := config.FromLookup(func(key string) (string, bool) {
		if key == "BACKEND_URL" {
			return fb.server.URL, true
		}
		return "", false
	})
	return cfg
}

func (fb *fakeBackend) client() *services.HTTPBackendClient {
	return services.NewHTTPBackendClient(fb.config())
}

func (fb *fakeBackend) set(f func(fb *fakeBackend)) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	f(fb)
}

func (fb *fakeBackend) snapshot() (seedCalls int, queries []string, inquiries []map[string]interface{}) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.seedCalls, append([]string(nil), fb.packageQueries...), append([]map[string]interface{}(nil), fb.inquiries...)
}

func dubaiCatalog(fb *fakeBackend) {
	fb.destinations = []catalog_models.Destination{
		{ID: "d1", Slug: "dubai", Name: "Dubai"},
		{ID: "d2", Slug: "thailand", Name: "Thailand"},
	}
	fb.packages = []catalog_models.Package{
		{ID: "p1", Title: "Desert Safari", DestinationSlug: "dubai", Price: 199, Days: 3},
		{ID: "p2", Title: "Island Hopping", DestinationSlug: "thailand", Price: 499, Days: 5},
	}
}
