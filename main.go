package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopmix/catalog/pkg/catalog"
	"github.com/shopmix/catalog/pkg/common"
	"github.com/shopmix/catalog/pkg/feed"
	"github.com/shopmix/catalog/pkg/server"
	"github.com/shopmix/catalog/pkg/storage"
	"github.com/shopmix/catalog/pkg/tracking"
)

var (
	country   = "se"
	dataDir   = "data"
	feedUrl   = ""
	redisUrl  = ""
	rabbitUrl = ""
)

func init() {
	if c, ok := os.LookupEnv("COUNTRY"); ok {
		country = c
	}
	if d, ok := os.LookupEnv("DATA_DIR"); ok {
		dataDir = d
	}
	feedUrl = os.Getenv("FEED_URL")
	redisUrl = os.Getenv("REDIS_URL")
	rabbitUrl = os.Getenv("RABBIT_URL")
}

func main() {
	enableProfiling := flag.Bool("profiling", false, "enable pprof on the debug port")
	flag.Parse()

	if feedUrl == "" {
		log.Fatalf("FEED_URL is required")
	}

	feedClient := feed.NewClient(feedUrl)
	diskStorage := storage.NewDiskStorage(dataDir)
	coordinator := catalog.NewCoordinator(feedClient, diskStorage)

	if err := coordinator.LoadFromDisk(); err != nil {
		log.Printf("Could not load snapshot from disk: %v", err)
	}
	go func() {
		if err := coordinator.Refresh(context.Background()); err != nil {
			log.Printf("Initial feed refresh failed: %v", err)
		}
	}()

	var cache *server.Cache
	if redisUrl != "" {
		cache = server.NewCache(redisUrl, os.Getenv("REDIS_PASSWORD"), 0)
		defer cache.Close()
	}

	var tracker tracking.Tracking
	if rabbitUrl != "" {
		t, err := tracking.NewRabbitTracking(rabbitUrl, country)
		if err != nil {
			log.Printf("Failed to connect to rabbitmq for tracking: %v", err)
		} else {
			tracker = t
			defer t.Close()
		}
	}

	ws := &server.WebServer{
		Catalog:  coordinator,
		Cache:    cache,
		Tracking: tracker,
		ListTTL:  5 * time.Minute,
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", ws.ClientHandler()))

	if secret := os.Getenv("ADMIN_JWT_SECRET"); secret != "" {
		admin := &server.AdminServer{WebServer: ws, JwtSecret: []byte(secret)}
		mux.Handle("/admin/", http.StripPrefix("/admin", admin.Handler()))
	} else {
		log.Printf("ADMIN_JWT_SECRET not set, admin endpoints disabled")
	}

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	debugMux.Handle("/metrics", promhttp.Handler())
	if *enableProfiling {
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/heap", pprof.Index)
	}
	go func() {
		if err := http.ListenAndServe(":8081", debugMux); err != nil {
			log.Printf("debug server stopped: %v", err)
		}
	}()

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   10 * time.Second,
		Hook:       5 * time.Second,
	})
	srv := common.NewServerWithTimeouts(&http.Server{Addr: ":8080", Handler: mux}, timeouts)

	common.RunServerWithShutdown(srv, "catalog", timeouts.Shutdown, timeouts.Hook,
		func(ctx context.Context) error {
			log.Println("Saving snapshot before shutdown")
			return coordinator.SaveToDisk()
		},
	)
}
