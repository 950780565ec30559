package gtkhost

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	"github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/rs/zerolog"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/infrastructure/gtkhost/keybridge"
	"github.com/bnema/findpopup/internal/logging"
)

// WebContent is a WebKit view hosting the search page. Page key-downs reach
// the installed handler through the key bridge script.
type WebContent struct {
	view   *webkit.WebView
	ucm    *webkit.UserContentManager
	logger zerolog.Logger

	mu       sync.Mutex
	handler  port.KeyHandler
	msgSig   glib.SignalHandle
	disposed bool
}

// NewWebContent creates the view and loads url. An empty url loads a blank page.
func NewWebContent(ctx context.Context, url string) *WebContent {
	c := &WebContent{
		view:   webkit.NewWebView(),
		logger: *logging.FromContext(logging.WithComponent(ctx, "web-content")),
	}
	c.ucm = c.view.UserContentManager()
	c.ucm.AddScript(webkit.NewUserScript(
		keybridge.Script,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))
	if !c.ucm.RegisterScriptMessageHandler(keybridge.HandlerName, "") {
		c.logger.Warn().Str("handler", keybridge.HandlerName).Msg("failed to register key bridge handler")
	}
	c.msgSig = c.ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		c.onBridgeMessage(value.ToString())
	})

	if url == "" {
		c.view.LoadHTML("<!doctype html><html><body></body></html>", "about:blank")
	} else {
		c.view.LoadURI(url)
	}
	return c
}

func (c *WebContent) onBridgeMessage(payload string) {
	code, mods, err := keybridge.Parse(payload)
	if err != nil {
		c.logger.Debug().Err(err).Msg("ignoring key bridge message")
		return
	}

	c.mu.Lock()
	handler := c.handler
	c.mu.Unlock()
	if handler == nil {
		return
	}
	handled := handler(code, mods)
	c.logger.Trace().
		Uint("key_code", code).
		Uint("modifiers", mods).
		Bool("handled", handled).
		Bool("cancelled_in_page", keybridge.ConsumedInPage(code, mods)).
		Msg("page key")
}

// Component implements port.ContentSurface.
func (c *WebContent) Component() any {
	return c.view
}

// Focus implements port.ContentSurface.
func (c *WebContent) Focus() {
	c.view.GrabFocus()
}

// SetKeyHandler implements port.ContentSurface.
func (c *WebContent) SetKeyHandler(handler port.KeyHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = handler
}

// Dispose implements port.ContentSurface.
func (c *WebContent) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	c.handler = nil
	c.mu.Unlock()

	c.ucm.HandlerDisconnect(c.msgSig)
	c.ucm.UnregisterScriptMessageHandler(keybridge.HandlerName, "")
	c.view.TryClose()
}
