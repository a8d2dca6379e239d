package webrender

import "github.com/coreos/go-semver/semver"

// Feature gate versions. Shared-texture output and engine-side audio
// control appeared in different engine generations; older builds fall
// back to the software paths.
var (
	versionSharedTextures = semver.New("3.7.0")
	versionAudioControl   = semver.New("3.6.0")
	versionBeginFrame     = semver.New("3.0.0")
)

// Capabilities describes what an engine build supports. Resolved once at
// startup and treated as immutable afterwards.
type Capabilities struct {
	// Version is the engine build version, nil when unknown. Unknown
	// versions fail every version-gated check.
	Version *semver.Version

	// SharedTextures is true when the engine build was compiled with
	// GPU shared-texture output.
	SharedTextures bool

	// FileURLScheme is true when the engine allows file:// URLs for
	// local content. When false, local files are served through the
	// pseudo-absolute http scheme instead.
	FileURLScheme bool

	// NativeKeycodes is true when the platform's native input system
	// already delivers normalized virtual-key codes, making keysym
	// translation unnecessary.
	NativeKeycodes bool

	// AudioRerouting is true when the host pipeline can take over a
	// browser's audio output.
	AudioRerouting bool
}

func (c Capabilities) atLeast(v *semver.Version) bool {
	return c.Version != nil && !c.Version.LessThan(*v)
}

// SupportsSharedTextures reports whether shared-texture negotiation
// should be attempted at all.
func (c Capabilities) SupportsSharedTextures() bool {
	return c.SharedTextures && c.atLeast(versionSharedTextures)
}

// SupportsAudioControl reports whether SetAudioMuted is usable.
func (c Capabilities) SupportsAudioControl() bool {
	return c.atLeast(versionAudioControl)
}

// SupportsExternalBeginFrame reports whether the engine honors external
// begin-frame signals.
func (c Capabilities) SupportsExternalBeginFrame() bool {
	return c.atLeast(versionBeginFrame)
}
