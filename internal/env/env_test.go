package env

import "testing"

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")

	Load()

	if Env.BackendPort != "8080" {
		t.Errorf("expected default port 8080, got %q", Env.BackendPort)
	}
	if Env.LegacyCascade {
		t.Error("legacy cascade must be off by default")
	}
}

func TestLoadReadsLegacyCascadeFlag(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")
	t.Setenv("BACKEND_PORT", "9090")
	t.Setenv("LEGACY_STATUS_CASCADE", "true")

	Load()

	if Env.BackendPort != "9090" {
		t.Errorf("expected port 9090, got %q", Env.BackendPort)
	}
	if !Env.LegacyCascade {
		t.Error("expected legacy cascade enabled")
	}
}
