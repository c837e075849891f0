//go:build js && wasm

// Command web is the browser build of snoozer:
//
//	GOOS=js GOARCH=wasm go build -o snoozer.wasm ./cmd/web
//
// The API base URL may be overridden with an "api" query parameter.
package main

import (
	"context"
	"os"
	"syscall/js"
	"time"

	"github.com/dmitrijs2005/snoozer/internal/client/client"
	"github.com/dmitrijs2005/snoozer/internal/client/controller"
	"github.com/dmitrijs2005/snoozer/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/snoozer/internal/client/services"
	"github.com/dmitrijs2005/snoozer/internal/client/session"
	"github.com/dmitrijs2005/snoozer/internal/client/web"
	"github.com/dmitrijs2005/snoozer/internal/logging"
	"github.com/hexops/vecty"
)

const defaultAPIBaseURL = "https://hack-or-snooze-v3.herokuapp.com"

func apiBaseURL() string {
	params := js.Global().Get("URLSearchParams").New(js.Global().Get("location").Get("search"))
	if v := params.Call("get", "api"); !v.IsNull() {
		return v.String()
	}
	return defaultAPIBaseURL
}

func main() {
	ctx := context.Background()
	log := logging.New(os.Stderr, "debug")

	apiClient, err := client.NewHTTPClient(apiBaseURL(), 10*time.Second)
	if err != nil {
		log.Error(ctx, "bad api url", "error", err)
		return
	}

	page := web.NewPage(ctx)
	ctrl := controller.New(
		services.NewAuthService(apiClient, localstorage.NewBrowserRepository()),
		services.NewStoryService(apiClient),
		session.New(),
		page,
		log,
	)
	page.Bind(ctrl)

	vecty.SetTitle("Hack or Snooze")
	vecty.RenderBody(page)

	go ctrl.Start(ctx)

	// Keep the Go runtime alive for event callbacks.
	select {}
}
