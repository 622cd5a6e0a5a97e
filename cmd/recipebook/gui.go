package recipebook

import (
	"context"
	"fmt"
	"net/http"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/recipebook/internal/catalog"
	"github.com/ytget/recipebook/internal/config"
	"github.com/ytget/recipebook/internal/notify"
	"github.com/ytget/recipebook/internal/platform"
	"github.com/ytget/recipebook/internal/ui"
)

const (
	AppID   = "com.ytget.recipebook"
	AppName = "Recipe Book"
)

// runGUI opens the recipe window and blocks until it is closed
func runGUI(cmd *cobra.Command, _ []string) error {
	opts, logger, err := loadOptions()
	if err != nil {
		return err
	}
	logger.Info("starting", "app", AppName, "version", version, "api", opts.APIURL)

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp.Preferences())
	settings.SetLogger(logger)
	settings.Load()
	if opts.Language != "" {
		settings.SetLanguage(opts.Language)
	}

	thumbDir, err := platform.ThumbnailCacheDir()
	if err != nil {
		logger.Warn("thumbnail disk cache disabled", "error", err)
		thumbDir = ""
	}
	thumbs, err := platform.NewThumbnailLoader(platform.ThumbnailOptions{
		HTTPClient:  &http.Client{Timeout: opts.Timeout},
		Dir:         thumbDir,
		MaxParallel: platform.DefaultMaxParallelDownloads,
	})
	if err != nil {
		return err
	}

	notifier := notify.New()
	ctrl := catalog.NewController(newClient(opts, logger), settings, notifier, catalog.Options{
		Debounce: opts.Debounce,
		Logger:   logger,
	})

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ui.NewRootUI(ctx, myWindow, myApp, ctrl, notifier, settings, thumbs)

	go func() {
		if err := ctrl.Start(ctx); err != nil {
			logger.Error("initial load failed", "error", err)
		}
	}()

	myWindow.ShowAndRun()
	ctrl.Stop()
	return nil
}
