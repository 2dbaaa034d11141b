package provider

import (
	"errors"
	"strings"
	"testing"
)

func TestRegister(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register("test", func(cfg Config) (Client, error) {
		return NewMockClient("").WithName("test"), nil
	})

	if !IsRegistered("test") {
		t.Error("expected 'test' to be registered")
	}
}

func TestRegister_Panic(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register("duplicate", func(cfg Config) (Client, error) {
		return NewMockClient(""), nil
	})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("duplicate", func(cfg Config) (Client, error) {
		return NewMockClient(""), nil
	})
}

func TestNew(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	var got Config
	Register("test", func(cfg Config) (Client, error) {
		got = cfg
		return NewMockClient("").WithName("test"), nil
	})

	client, err := New("test", Config{Model: "m"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.Provider() != "test" {
		t.Errorf("Provider() = %q, want %q", client.Provider(), "test")
	}
	if got.Model != "m" {
		t.Errorf("factory got Model %q, want %q", got.Model, "m")
	}
}

func TestNew_NameFromConfig(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	Register("test", func(cfg Config) (Client, error) {
		return NewMockClient("").WithName("test"), nil
	})

	client, err := New("", Config{Provider: "test"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.Provider() != "test" {
		t.Errorf("Provider() = %q", client.Provider())
	}
}

func TestNew_Unknown(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	_, err := New("missing", Config{})
	if !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestMustNew_Panics(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown provider")
		}
	}()
	MustNew("missing", Config{})
}

func TestAvailable(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	factory := func(cfg Config) (Client, error) { return NewMockClient(""), nil }
	Register("zeta", factory)
	Register("alpha", factory)

	got := Available()
	if len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("Available() = %v, want [alpha zeta]", got)
	}

	Unregister("alpha")
	if IsRegistered("alpha") {
		t.Error("expected 'alpha' to be unregistered")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	r := NewRegistry()
	called := false
	r.Register("test", func(cfg Config) (Client, error) {
		called = true
		return NewMockClient(""), nil
	})

	_, err := r.New("test", Config{Temperature: 5})
	if err == nil {
		t.Fatal("expected error for out-of-range temperature")
	}
	if called {
		t.Error("factory should not run for an invalid config")
	}
}

func TestRegistry_Isolated(t *testing.T) {
	r := NewRegistry()
	r.Register("local", func(cfg Config) (Client, error) { return NewMockClient("").WithName("local"), nil })

	if IsRegistered("local") {
		t.Error("standalone registry leaked into the default registry")
	}
	if !r.Has("local") {
		t.Error("expected 'local' in standalone registry")
	}

	_, err := r.New("other", Config{})
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
	if want := `"other" (available: local)`; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should contain %q", err, want)
	}

	r.Reset()
	if len(r.Names()) != 0 {
		t.Errorf("Names() after Reset = %v", r.Names())
	}
}
