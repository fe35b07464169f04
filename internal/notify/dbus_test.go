//go:build linux

package notify

import (
	"os"
	"testing"
)

func TestNew(t *testing.T) {
	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if notifier == nil {
		t.Fatal("New() returned nil notifier")
	}
}

func TestNotifySendsAndCloses(t *testing.T) {
	// Needs a real session bus; skipped in headless CI.
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	id, err := notifier.Notify(Notification{
		Title:   "Tapedeck Test",
		Body:    "Notification from unit test",
		Timeout: 1000,
		Urgency: UrgencyLow,
	})
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}

	if err := notifier.Close(id); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
