package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vidpipe/webrender"
	"github.com/vidpipe/webrender/config"
)

func TestNormalizeLocalURL_WindowsDrivePath(t *testing.T) {
	got := normalizeLocalURL(`C:\Media\clip.webm`, true, true)
	if got != "file:///C:/Media/clip.webm" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeLocalURL_UnixPath(t *testing.T) {
	got := normalizeLocalURL("/home/user/clip.webm", false, true)
	if got != "file:///home/user/clip.webm" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeLocalURL_EncodesSpecials(t *testing.T) {
	got := normalizeLocalURL("/home/user/my clip #1.webm", false, true)
	if got != "file:///home/user/my%20clip%20%231.webm" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeLocalURL_PreservesUnreserved(t *testing.T) {
	got := normalizeLocalURL("/a/b-c_d.e!f~g*h'i(j)k", false, true)
	if got != "file:///a/b-c_d.e!f~g*h'i(j)k" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeLocalURL_NoFileScheme(t *testing.T) {
	got := normalizeLocalURL(`C:\clip.webm`, true, false)
	if got != "http://absolute/C:/clip.webm" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeLocalURL_ForwardSlashesOnWindows(t *testing.T) {
	got := normalizeLocalURL("C:/Media/clip.webm", true, true)
	if got != "file:///C:/Media/clip.webm" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeLocalURL_OnlyFirstColonKept(t *testing.T) {
	got := normalizeLocalURL(`C:\dir:with:colons\f.webm`, true, true)
	if got != "file:///C:/dir%3Awith%3Acolons/f.webm" {
		t.Fatalf("got %q", got)
	}
}

func TestUriEncode_UTF8Bytes(t *testing.T) {
	if got := uriEncode("ü"); got != "%C3%BC" {
		t.Fatalf("got %q", got)
	}
}

func readerSource(caps webrender.Capabilities, windows bool) *Source {
	return &Source{caps: caps, deps: Deps{WindowsPathStyle: windows}}
}

func mustSettings(t *testing.T, doc string) config.Settings {
	t.Helper()
	s, err := config.FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	return s
}

func TestReadConfig_Fields(t *testing.T) {
	s := readerSource(webrender.Capabilities{FileURLScheme: true}, false)
	got := s.readConfig(mustSettings(t, `{
		"url": "https://example.com",
		"width": 1920,
		"height": 1080,
		"fps_custom": true,
		"fps": 60,
		"shutdown": true,
		"restart_when_active": true,
		"css": "body { background: transparent; }",
		"reroute_audio": true
	}`))

	want := Config{
		URL:                "https://example.com",
		Width:              1920,
		Height:             1080,
		FPSCustom:          true,
		FPS:                60,
		ShutdownWhenHidden: true,
		RestartWhenActive:  true,
		Stylesheet:         "body { background: transparent; }",
		RerouteAudio:       true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestReadConfig_LocalFileWins(t *testing.T) {
	s := readerSource(webrender.Capabilities{FileURLScheme: true}, true)
	got := s.readConfig(mustSettings(t, `{
		"is_local_file": true,
		"local_file": "C:\\clip.webm",
		"url": "https://ignored.example.com"
	}`))
	if got.URL != "file:///C:/clip.webm" {
		t.Fatalf("URL = %q", got.URL)
	}
	if !got.IsLocalFile {
		t.Fatal("IsLocalFile = false")
	}
}

func TestReadConfig_PseudoAbsoluteRewrite(t *testing.T) {
	s := readerSource(webrender.Capabilities{FileURLScheme: true}, false)

	got := s.readConfig(mustSettings(t, `{"url": "http://absolute/C:/old.webm"}`))
	if got.URL != "file:///C:/old.webm" {
		t.Fatalf("URL = %q", got.URL)
	}
	if !got.IsLocalFile {
		t.Fatal("rewritten URL not flagged local")
	}

	// Scheme comparison is case-insensitive.
	got = s.readConfig(mustSettings(t, `{"url": "HTTP://Absolute/C:/old.webm"}`))
	if got.URL != "file:///C:/old.webm" {
		t.Fatalf("URL = %q for upper-case scheme", got.URL)
	}
}

func TestReadConfig_PseudoAbsoluteKeptWithoutFileScheme(t *testing.T) {
	s := readerSource(webrender.Capabilities{}, false)
	got := s.readConfig(mustSettings(t, `{"url": "http://absolute/C:/old.webm"}`))
	if got.URL != "http://absolute/C:/old.webm" {
		t.Fatalf("URL = %q, want unchanged", got.URL)
	}
	if got.IsLocalFile {
		t.Fatal("IsLocalFile set without a file scheme")
	}
}

func TestConfig_Equal(t *testing.T) {
	a := Config{URL: "https://example.com", Width: 640, FPS: 30}
	b := a
	if !a.Equal(b) {
		t.Fatal("identical snapshots not equal")
	}
	b.FPS = 60
	if a.Equal(b) {
		t.Fatal("differing snapshots equal")
	}
}
