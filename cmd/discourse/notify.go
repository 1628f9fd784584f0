package main

import (
	"fmt"
	"log/slog"

	"github.com/gen2brain/beeep"
)

// notifyHidden tells the user the app is still alive after the main window
// was hidden to the tray for the first time. Notification failure is logged
// and ignored; the tray icon is the real affordance.
func notifyHidden(productName string) {
	title := productName + " is still running"
	message := fmt.Sprintf("%s keeps running in the tray. Click the tray icon to bring it back.", productName)
	if err := beeep.Notify(title, message, ""); err != nil {
		slog.Warn("[NOTIFY] Failed to send notification", "error", err)
		return
	}
	slog.Debug("[NOTIFY] Hidden-to-tray notice sent")
}
