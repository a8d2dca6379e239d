package webrender

import (
	"testing"

	"github.com/coreos/go-semver/semver"
)

func capsAt(v string) Capabilities {
	return Capabilities{Version: semver.New(v), SharedTextures: true}
}

func TestCapabilities_SharedTextureGate(t *testing.T) {
	if !capsAt("3.7.0").SupportsSharedTextures() {
		t.Fatal("3.7.0 should support shared textures")
	}
	if capsAt("3.6.9").SupportsSharedTextures() {
		t.Fatal("3.6.9 should not support shared textures")
	}

	// The build flag gates independently of the version.
	c := capsAt("5.0.0")
	c.SharedTextures = false
	if c.SupportsSharedTextures() {
		t.Fatal("build without shared textures reported support")
	}
}

func TestCapabilities_AudioControlGate(t *testing.T) {
	if !capsAt("3.6.0").SupportsAudioControl() {
		t.Fatal("3.6.0 should support audio control")
	}
	if capsAt("3.5.9").SupportsAudioControl() {
		t.Fatal("3.5.9 should not support audio control")
	}
}

func TestCapabilities_BeginFrameGate(t *testing.T) {
	if !capsAt("3.0.0").SupportsExternalBeginFrame() {
		t.Fatal("3.0.0 should support external begin-frame")
	}
	if capsAt("2.9.0").SupportsExternalBeginFrame() {
		t.Fatal("2.9.0 should not support external begin-frame")
	}
}

func TestCapabilities_UnknownVersionFailsGates(t *testing.T) {
	c := Capabilities{SharedTextures: true}
	if c.SupportsSharedTextures() || c.SupportsAudioControl() || c.SupportsExternalBeginFrame() {
		t.Fatal("unknown version passed a version gate")
	}
}

func TestProcessMessage_Accessors(t *testing.T) {
	m := NewMessage("Visibility", true, "extra")
	if m.Name != "Visibility" {
		t.Fatalf("Name = %q", m.Name)
	}
	if !m.Bool(0) {
		t.Fatal("Bool(0) = false")
	}
	if m.Str(1) != "extra" {
		t.Fatalf("Str(1) = %q", m.Str(1))
	}

	// Out-of-range and mistyped access yields zero values.
	if m.Bool(1) || m.Bool(5) || m.Bool(-1) {
		t.Fatal("bad Bool access non-false")
	}
	if m.Str(0) != "" || m.Str(9) != "" {
		t.Fatal("bad Str access non-empty")
	}
}

func TestFrame_ReleaseIdempotentAndNilSafe(t *testing.T) {
	released := 0
	f := NewFrame(4, 4, nil, func() { released++ })
	f.Release()
	f.Release()
	if released != 1 {
		t.Fatalf("released %d times, want 1", released)
	}

	var nilFrame *Frame
	nilFrame.Release()

	NewFrame(1, 1, nil, nil).Release()
}
