package source

import (
	"strings"

	"github.com/vidpipe/webrender/config"
)

// pseudoAbsolutePrefix is the legacy mapping for local files on engine
// builds without a file URL scheme.
const pseudoAbsolutePrefix = "http://absolute/"

// Config is the normalized per-source configuration snapshot. It is
// replaced atomically on each successful update; all fields are
// comparable so equality is field-for-field.
type Config struct {
	IsLocalFile        bool
	URL                string
	Width              int
	Height             int
	FPSCustom          bool
	FPS                int
	ShutdownWhenHidden bool
	RestartWhenActive  bool
	Stylesheet         string
	RerouteAudio       bool
}

// Equal reports field-for-field equality of normalized snapshots.
func (c Config) Equal(o Config) bool {
	return c == o
}

// Update applies a new settings document. A nil document on the first
// call defers initialization, keeping prior state; a nil document later
// re-runs the teardown/recreate tail with the current snapshot, which is
// how hidden-shutdown sources come back. An update that normalizes to
// the identical snapshot is a no-op, so redundant settings writes cause
// no engine churn.
func (s *Source) Update(settings *config.Settings) {
	s.mu.Lock()
	if settings != nil {
		ncfg := s.readConfig(*settings)
		if s.firstUpdateDone && ncfg.Equal(s.cfg) {
			s.mu.Unlock()
			return
		}
		s.cfg = ncfg
		if s.deps.Audio != nil {
			s.deps.Audio.SetAudioActive(ncfg.RerouteAudio)
		}
	} else if !s.firstUpdateDone {
		s.firstUpdateDone = true
		s.mu.Unlock()
		return
	}
	s.firstUpdateDone = true
	shutdownHidden := s.cfg.ShutdownWhenHidden
	s.mu.Unlock()

	s.destroyBrowserAsync()
	s.releaseFrame()
	s.clearAudioStreams()
	if !shutdownHidden || s.showing.Load() {
		s.pendingCreate.Store(true)
	}
}

// readConfig extracts and normalizes the persisted fields of a settings
// document into a snapshot.
func (s *Source) readConfig(settings config.Settings) Config {
	c := Config{
		IsLocalFile:        settings.Bool(config.KeyIsLocalFile),
		Width:              settings.Int(config.KeyWidth),
		Height:             settings.Int(config.KeyHeight),
		FPSCustom:          settings.Bool(config.KeyFPSCustom),
		FPS:                settings.Int(config.KeyFPS),
		ShutdownWhenHidden: settings.Bool(config.KeyShutdown),
		RestartWhenActive:  settings.Bool(config.KeyRestart),
		Stylesheet:         settings.Str(config.KeyCSS),
		RerouteAudio:       settings.Bool(config.KeyRerouteAudio),
	}
	if c.IsLocalFile {
		c.URL = normalizeLocalURL(settings.Str(config.KeyLocalFile), s.deps.WindowsPathStyle, s.caps.FileURLScheme)
	} else {
		c.URL = settings.Str(config.KeyURL)
	}

	// Pseudo-absolute URIs from older persisted settings are rewritten
	// back to the native file scheme when the engine supports it.
	if s.caps.FileURLScheme && len(c.URL) >= len(pseudoAbsolutePrefix) &&
		strings.EqualFold(c.URL[:len(pseudoAbsolutePrefix)], pseudoAbsolutePrefix) {
		c.URL = "file:///" + c.URL[len(pseudoAbsolutePrefix):]
		c.IsLocalFile = true
	}
	return c
}

// normalizeLocalURL percent-encodes a local file path and rewrites it
// into a file-scheme URI, or the pseudo-absolute form when the engine
// has no file URL scheme. Best effort: malformed paths produce an odd
// but harmless URI, never a failure.
func normalizeLocalURL(path string, windowsStyle, fileScheme bool) string {
	u := uriEncode(path)

	if windowsStyle {
		// Keep the drive letter's colon.
		if i := strings.Index(u, "%3A"); i >= 0 {
			u = u[:i] + ":" + u[i+3:]
		}
	}
	u = strings.ReplaceAll(u, "%5C", "/")
	u = strings.ReplaceAll(u, "%2F", "/")

	if !fileScheme {
		return pseudoAbsolutePrefix + u
	}
	if windowsStyle {
		// Windows-style local file URL: file:///C:/file/path.webm
		return "file:///" + u
	}
	// UNIX-style local file URL: file:///home/user/file.webm
	return "file://" + u
}

// uriEncode percent-encodes everything outside the RFC 2396 unreserved
// set, byte-wise over the UTF-8 form.
func uriEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if uriUnreserved(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[ch>>4])
		b.WriteByte(hex[ch&0x0f])
	}
	return b.String()
}

func uriUnreserved(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	}
	switch ch {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
