package packaging

import (
	"testing"
)

func TestNewSystemdController_ImplementsInterface(t *testing.T) {
	var _ SystemdController = NewSystemdController()
}

func TestRealSystemdController_IsAvailable(t *testing.T) {
	ctrl := NewSystemdController()
	// Just verify it returns a bool without panicking.
	// The actual value depends on the test environment.
	_ = ctrl.IsAvailable()
}
