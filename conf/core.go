package conf

import (
	"context"
	"encoding/json/v2"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/zeptools/docgen/svc"
	"github.com/zeptools/docgen/throttle"
	"github.com/zeptools/docgen/web"
)

// Core - common config
type Core struct {
	AppName   string       `json:"app_name"`
	Listen    string       `json:"listen"` // HTTP Server Listen IP:PORT Address
	Host      string       `json:"host"`   // HTTP Host. Can be used to generate public url endpoints
	DebugOpts DebugOpts    `json:"debug_opts"`
	Render    RenderOpts   `json:"render"`
	Auth      AuthOpts     `json:"auth"`
	Throttle  ThrottleOpts `json:"throttle"`

	AppRoot             string                         `json:"-"` // Filled from compiled paths
	RootCtx             context.Context                `json:"-"` // Global Context with RootCancel
	RootCancel          context.CancelFunc             `json:"-"` // CancelFunc for RootCtx
	WebService          *web.Service                   `json:"-"` // PrepareWebService
	ThrottleBucketStore *throttle.BucketStore[string]  `json:"-"` // PrepareThrottleBucketStore

	services []svc.Service // Services to Manage
	done     chan error
}

// DebugOpts - Debug Options
type DebugOpts struct {
	RenderSummary bool `json:"render_summary"` // allow ?debug=1 JSON summaries on /convert
}

// RenderOpts - knobs for the convert endpoint
type RenderOpts struct {
	MaxMemoryMB int64 `json:"max_memory_mb"` // multipart form memory budget
}

// AuthOpts - optional bearer-token guard on the convert endpoint
type AuthOpts struct {
	Enabled bool   `json:"enabled"`
	Secret  string `json:"secret"` // HS256 signing secret
}

// ThrottleOpts - per-IP token bucket settings for the convert endpoint
type ThrottleOpts struct {
	Burst              int `json:"burst"`
	Increment          int `json:"increment"`
	PeriodSeconds      int `json:"period_seconds"`
	CleanupCycleMin    int `json:"cleanup_cycle_min"`
	CleanupOlderThanMin int `json:"cleanup_older_than_min"`
}

// BaseInit - 1st step for initialization
// 1. set AppRoot
// 2. load config/.core.json file
// 3. Start ShutdownSignalListener
func (c *Core) BaseInit(appRoot string, rootCtx context.Context, rootCancel context.CancelFunc) error {
	c.AppRoot = appRoot
	envFilePath := filepath.Join(appRoot, "config", ".core.json")
	envBytes, err := os.ReadFile(envFilePath) // ([]byte, error)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(envBytes, c); err != nil {
		return err
	}
	c.RootCtx = rootCtx
	c.RootCancel = rootCancel
	c.startShutdownSignalListener()
	return nil
}

func (c *Core) AddService(s svc.Service) {
	log.Printf("[INFO] adding service: %s", s.Name())
	c.services = append(c.services, s)
	log.Printf("[INFO] total services: %d", len(c.services))
}

func (c *Core) StartServices() error {
	c.done = make(chan error, len(c.services))
	for _, s := range c.services {
		err := s.Start()
		if err != nil {
			return err
		}
		go func(s svc.Service) {
			err := <-s.Done()
			c.done <- err
		}(s) // pass the loop var to the param. otherwise, they are captured inside goroutine lazily
	}
	return nil
}

func (c *Core) WaitServicesDone() error {
	for i := 0; i < len(c.services); i++ {
		if err := <-c.done; err != nil {
			return err
		}
	}
	return nil
}

func (c *Core) StopServices() {
	for _, s := range c.services {
		s.Stop()
	}
}

var once sync.Once

func (c *Core) startShutdownSignalListener() {
	once.Do(func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigs
			log.Printf("[INFO] got signal [%s]. shutting down app [%s] ...", sig, c.AppName)
			c.RootCancel() // broadcast to all child services via Context.Done()
		}()
	})
	log.Printf("[INFO][CORE] shutdown signal listener started")
}

func (c *Core) PrepareWebService(addr string, router http.Handler) {
	c.WebService = web.NewService(c.RootCtx, addr, router)
	c.AddService(c.WebService)
}

// PrepareThrottleBucketStore builds the bucket store service and registers
// the convert bucket group from Throttle opts
func (c *Core) PrepareThrottleBucketStore(groupID string) {
	cleanupCycle := time.Duration(c.Throttle.CleanupCycleMin) * time.Minute
	if cleanupCycle <= 0 {
		cleanupCycle = 10 * time.Minute
	}
	cleanupOlderThan := time.Duration(c.Throttle.CleanupOlderThanMin) * time.Minute
	if cleanupOlderThan <= 0 {
		cleanupOlderThan = 30 * time.Minute
	}
	c.ThrottleBucketStore = throttle.NewBucketStore[string](c.RootCtx, cleanupCycle, cleanupOlderThan)
	c.ThrottleBucketStore.SetBucketGroup(groupID, &throttle.BucketConf{
		Burst:     c.Throttle.Burst,
		Increment: c.Throttle.Increment,
		Period:    time.Duration(c.Throttle.PeriodSeconds) * time.Second,
	})
	c.AddService(c.ThrottleBucketStore)
}

func (c *Core) ResourceCleanUp() {
	log.Println("[INFO] App Resource Cleaning Up...")
	// Renders hold no cross-request resources. Nothing to close yet
	log.Println("[INFO] App Resource Cleanup Complete")
}
