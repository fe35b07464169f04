package notify

import "testing"

func TestUrgencyValues(t *testing.T) {
	// Urgency constants are wire values from the freedesktop spec.
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNotificationZeroValue(t *testing.T) {
	var n Notification
	if n.Urgency != UrgencyLow {
		t.Errorf("zero value Urgency = %d, want UrgencyLow (0)", n.Urgency)
	}
	if n.ReplacesID != 0 {
		t.Error("zero value ReplacesID should be 0 (new notification)")
	}
}

func TestDisabled(t *testing.T) {
	n := Disabled()
	id, err := n.Notify(Notification{Title: "ignored"})
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if id != 0 {
		t.Errorf("Notify() id = %d, want 0", id)
	}
	if err := n.Close(0); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
