package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/zeptools/docgen/apis/convert"
	"github.com/zeptools/docgen/conf"
	"github.com/zeptools/docgen/responses"
	"github.com/zeptools/docgen/routing"
	"github.com/zeptools/docgen/sec"
	"github.com/zeptools/docgen/throttle"
)

func main() {
	appRoot := flag.String("approot", ".", "app root directory holding config/")
	flag.Parse()

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	core := &conf.Core{}
	if err := core.BaseInit(*appRoot, rootCtx, rootCancel); err != nil {
		log.Fatalf("[ERROR] config init failed: %v", err)
	}

	core.PrepareThrottleBucketStore("convert")

	router := &routing.BaseRouter{ServeMux: http.NewServeMux()}

	convertWrappers := []routing.HandlerWrapper{
		routing.WrapperFunc(routing.RecoverWrapper),
		&throttle.ByClientIP{Store: core.ThrottleBucketStore, GroupID: "convert"},
	}
	if core.Auth.Enabled {
		convertWrappers = append(convertWrappers, &sec.BearerAuth{Secret: []byte(core.Auth.Secret)})
	}

	router.Handle("POST /convert", &convert.Handler{
		MaxMemoryMB: core.Render.MaxMemoryMB,
		AllowDebug:  core.DebugOpts.RenderSummary,
	}, convertWrappers...)

	router.Handle("/echo",
		&responses.EchoHandler{MaxMemoryMB: core.Render.MaxMemoryMB},
		routing.WrapperFunc(routing.RecoverWrapper),
	)

	core.PrepareWebService(core.Listen, router)

	if err := core.StartServices(); err != nil {
		log.Fatalf("[ERROR] service start failed: %v", err)
	}
	if err := core.WaitServicesDone(); err != nil {
		log.Printf("[ERROR] service exited: %v", err)
	}
	core.ResourceCleanUp()
}
