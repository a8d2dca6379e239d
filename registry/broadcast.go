package registry

import (
	"github.com/vidpipe/webrender"
)

// MsgDispatchEvent is the process message carrying a named event and a
// JSON payload into embedded content.
const MsgDispatchEvent = "dispatchEvent"

// PostMessage submits msg asynchronously to one member, or to every live
// member when target is nil. Members without a current browser handle
// are skipped.
func (r *Registry) PostMessage(msg webrender.ProcessMessage, target Member) {
	post := func(m Member) {
		m.PostAsync(func(b webrender.Browser) {
			b.SendProcessMessage(webrender.TargetRenderer, msg)
		})
	}
	if target != nil {
		post(target)
		return
	}
	r.Each(post)
}

// DispatchEvent sends a named event with a JSON payload to one member or
// to all. A nil payload is delivered as an empty object.
func (r *Registry) DispatchEvent(name string, payload []byte, target Member) {
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	r.PostMessage(webrender.NewMessage(MsgDispatchEvent, name, string(payload)), target)
}
