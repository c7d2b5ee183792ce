package youversion

import "testing"

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("YOUVERSION_DEBUG", "true")
	c, err := New("tok")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ht, ok := c.http.Transport.(*headerTransport)
	if !ok {
		t.Fatalf("top transport is %T", c.http.Transport)
	}
	if _, ok := ht.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport when YOUVERSION_DEBUG=true, got %T", ht.base)
	}
}

func TestNew_NoDebugByDefault(t *testing.T) {
	t.Setenv("YOUVERSION_DEBUG", "")
	t.Setenv("DEBUG", "")
	c, err := New("tok")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ht, ok := c.http.Transport.(*headerTransport)
	if !ok {
		t.Fatalf("top transport is %T", c.http.Transport)
	}
	if _, ok := ht.base.(*debugTransport); ok {
		t.Fatal("debug transport must not install by default")
	}
}
