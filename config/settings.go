package config

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/vidpipe/webrender/errors"
)

// Persisted field keys consumed by source updates.
const (
	KeyIsLocalFile  = "is_local_file"
	KeyLocalFile    = "local_file"
	KeyURL          = "url"
	KeyWidth        = "width"
	KeyHeight       = "height"
	KeyFPSCustom    = "fps_custom"
	KeyFPS          = "fps"
	KeyShutdown     = "shutdown"
	KeyRestart      = "restart_when_active"
	KeyCSS          = "css"
	KeyRerouteAudio = "reroute_audio"
)

// Settings is an immutable JSON settings document with typed accessors.
// The zero value is an empty document.
type Settings struct {
	doc []byte
}

// FromJSON wraps a JSON document. The document is not copied; callers
// must not mutate it afterwards.
func FromJSON(data []byte) (Settings, error) {
	if len(data) == 0 {
		return Settings{}, nil
	}
	if !gjson.ValidBytes(data) {
		return Settings{}, errors.InvalidData(errors.PhaseUpdate, "settings document is not valid JSON")
	}
	return Settings{doc: data}, nil
}

// Bool returns the boolean at key, or false when absent.
func (s Settings) Bool(key string) bool {
	return gjson.GetBytes(s.doc, key).Bool()
}

// Int returns the integer at key, or zero when absent.
func (s Settings) Int(key string) int {
	return int(gjson.GetBytes(s.doc, key).Int())
}

// Str returns the string at key, or "" when absent.
func (s Settings) Str(key string) string {
	return gjson.GetBytes(s.doc, key).String()
}

// Set returns a new Settings with key set to value. The receiver is
// unchanged. Invalid paths return the receiver as-is.
func (s Settings) Set(key string, value any) Settings {
	doc := s.doc
	if len(doc) == 0 {
		doc = []byte("{}")
	}
	out, err := sjson.SetBytes(doc, key, value)
	if err != nil {
		return s
	}
	return Settings{doc: out}
}

// JSON returns the underlying document. Callers must not mutate it.
func (s Settings) JSON() []byte {
	if len(s.doc) == 0 {
		return []byte("{}")
	}
	return s.doc
}
