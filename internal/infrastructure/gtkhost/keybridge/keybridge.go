// Package keybridge carries key-down events from the embedded page to Go.
// The page posts "keyCode:modifiers" strings on a script message channel;
// modifiers use the content surface bits (shift=1, ctrl=2, alt=4, meta=8).
package keybridge

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// HandlerName is the script message handler the bridge posts to.
const HandlerName = "findpopup"

// escapeKeyCode is the DOM keyCode of Escape.
const escapeKeyCode = 27

// Script is injected at document start into the top frame. It listens in the
// capture phase so page handlers cannot swallow Escape before Go sees it, and
// cancels the keys ConsumedInPage names so the page never acts on them.
const Script = `(function () {
  if (window.__findpopupKeyBridge) { return; }
  window.__findpopupKeyBridge = true;
  document.addEventListener('keydown', function (e) {
    var mods = (e.shiftKey ? 1 : 0) | (e.ctrlKey ? 2 : 0) | (e.altKey ? 4 : 0) | (e.metaKey ? 8 : 0);
    var h = window.webkit && window.webkit.messageHandlers && window.webkit.messageHandlers.` + HandlerName + `;
    if (h) { h.postMessage(e.keyCode + ':' + mods); }
    if (e.keyCode === 27 && mods === 0) {
      e.preventDefault();
      e.stopPropagation();
    }
  }, true);
})();`

// ConsumedInPage reports whether Script cancels the key in the page. Bare
// Escape hides the popup, so the page must not also handle it.
func ConsumedInPage(keyCode, modifiers uint) bool {
	return keyCode == escapeKeyCode && modifiers == 0
}

// Route names the pipeline a key pressed in a tracked window goes through.
type Route int

const (
	// RouteHost runs the key through the host key dispatchers.
	RouteHost Route = iota
	// RouteContent leaves the key to the page, which reports it over the bridge.
	RouteContent
)

func (r Route) String() string {
	if r == RouteContent {
		return "content"
	}
	return "host"
}

// RouteKey decides by focus. ancestry lists the focus widget followed by its
// parents, as native handles. A key belongs to the page when content, the
// page widget, is in that chain. A zero content means the window has no page.
func RouteKey(ancestry []uintptr, content uintptr) Route {
	if content == 0 {
		return RouteHost
	}
	if slices.Contains(ancestry, content) {
		return RouteContent
	}
	return RouteHost
}

// Parse decodes one bridge message.
func Parse(payload string) (keyCode, modifiers uint, err error) {
	code, mods, ok := strings.Cut(strings.TrimSpace(payload), ":")
	if !ok {
		return 0, 0, fmt.Errorf("key bridge: malformed message %q", payload)
	}
	c, err := strconv.ParseUint(code, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("key bridge: key code %q: %w", code, err)
	}
	m, err := strconv.ParseUint(mods, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("key bridge: modifiers %q: %w", mods, err)
	}
	return uint(c), uint(m), nil
}

// Format is the inverse of Parse.
func Format(keyCode, modifiers uint) string {
	return strconv.FormatUint(uint64(keyCode), 10) + ":" + strconv.FormatUint(uint64(modifiers), 10)
}
