// Package ui runs the GTK application hosting the popup.
package ui

import (
	"context"
	"os"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/bootstrap"
	"github.com/bnema/findpopup/internal/infrastructure/config"
	"github.com/bnema/findpopup/internal/infrastructure/gtkhost"
	"github.com/bnema/findpopup/internal/infrastructure/preview"
	"github.com/bnema/findpopup/internal/logging"
	"github.com/bnema/findpopup/internal/ui/controller"
)

const (
	// AppID is the GTK application id; it is also the D-Bus name the
	// application exports its actions under.
	AppID = "io.github.bnema.findpopup"

	mainContextID     = "main"
	toggleActionName  = "toggle-popup"
	toggleAccelerator = "<Alt>a"
	frameWidth        = 960
	frameHeight       = 600
)

// Options configures Run.
type Options struct {
	Config *config.Manager
	// Preview is selected in the preview pane before the first show.
	Preview port.PreviewItem
	// ShowOnStart shows the popup once the frame window is up.
	ShowOnStart bool
}

// Run runs the GTK application until it quits or ctx is cancelled.
// It must be called from the locked main goroutine.
func Run(ctx context.Context, opts Options) int {
	ctx = logging.WithComponent(ctx, "gui")
	log := logging.FromContext(ctx)
	cfg := opts.Config.Get()

	app := gtk.NewApplication(AppID, gio.ApplicationFlagsNone)

	var (
		registry  *controller.Registry
		host      *gtkhost.Host
		closeBus  = func() {}
		activated bool
	)

	app.ConnectActivate(func() {
		if activated {
			toggle(ctx, registry)
			return
		}
		activated = true

		host = gtkhost.NewHost(ctx, app)
		frame := newFrameWindow(app)

		appActions := gtkhost.NewAppActions(app)
		var chain port.ActionRegistry
		chain, closeBus = bootstrap.ActionChain(ctx, cfg, appActions)

		panel := preview.NewPanel()
		if opts.Preview != nil {
			panel.Select(opts.Preview)
		}

		factory := gtkhost.NewWindowFactory(host)
		factory.Parent = &frame.Window

		registry = controller.NewRegistry(func(contextID string) (*controller.PopupController, error) {
			current := opts.Config.Get()
			return controller.New(ctx, controller.Dependencies{
				Host:      host,
				Windows:   factory,
				Scheduler: gtkhost.Scheduler{},
				Content:   gtkhost.NewWebContent(ctx, current.Popup.ContentURL),
				Previews:  panel,
				Actions:   chain,
			}, bootstrap.ControllerOptions(current, contextID))
		})

		appActions.Register(toggleActionName, func() { toggle(ctx, registry) })
		app.SetAccelsForAction("app."+toggleActionName, []string{toggleAccelerator})

		opts.Config.OnConfigChange(func(next *config.Config) {
			glib.IdleAdd(func() bool {
				bootstrap.Reconfigure(ctx, next, controllers(registry)...)
				return false
			})
		})
		if err := opts.Config.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watcher not started")
		}

		frame.Present()

		if err := registry.Preload(mainContextID); err != nil {
			log.Error().Err(err).Msg("failed to preload popup")
		}
		if opts.ShowOnStart {
			toggle(ctx, registry)
		}
	})

	app.ConnectShutdown(func() {
		if registry != nil {
			registry.CloseAll()
		}
		if host != nil {
			host.Close()
		}
		closeBus()
	})

	runCtx, stop := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		<-gctx.Done()
		glib.IdleAdd(func() bool {
			app.Quit()
			return false
		})
		return nil
	})

	code := app.Run(os.Args[:1])
	stop()
	_ = g.Wait()

	log.Debug().Int("exit_code", code).Msg("application stopped")
	return code
}

func newFrameWindow(app *gtk.Application) *gtk.ApplicationWindow {
	frame := gtk.NewApplicationWindow(app)
	frame.SetTitle("findpopup")
	frame.SetDefaultSize(frameWidth, frameHeight)

	button := gtk.NewButtonWithLabel("Find  (Alt+A)")
	button.SetActionName("app." + toggleActionName)
	button.SetHAlign(gtk.AlignCenter)
	button.SetVAlign(gtk.AlignCenter)
	frame.SetChild(button)
	return frame
}

func toggle(ctx context.Context, registry *controller.Registry) {
	if registry == nil {
		return
	}
	c, err := registry.Get(mainContextID)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("popup unavailable")
		return
	}
	if err := c.Toggle(); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to toggle popup")
	}
}

func controllers(registry *controller.Registry) []*controller.PopupController {
	if registry == nil {
		return nil
	}
	ids := registry.ContextIDs()
	out := make([]*controller.PopupController, 0, len(ids))
	for _, id := range ids {
		if c, ok := registry.Lookup(id); ok {
			out = append(out, c)
		}
	}
	return out
}
