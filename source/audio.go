package source

import "context"

// AudioStream is one audio sub-stream handle delivered by the engine
// while audio is rerouted through the host pipeline.
type AudioStream interface {
	Close()
}

// AttachAudioStream registers an audio sub-stream under its stream ID,
// closing any stream it displaces. The audio map has its own lock,
// distinct from the registry lock, so broadcast traversal never waits on
// audio work.
func (s *Source) AttachAudioStream(id string, stream AudioStream) {
	s.audioMu.Lock()
	old := s.audio[id]
	s.audio[id] = stream
	s.audioMu.Unlock()
	if old != nil {
		old.Close()
	}
}

// DetachAudioStream removes and closes one audio sub-stream.
func (s *Source) DetachAudioStream(id string) {
	s.audioMu.Lock()
	stream := s.audio[id]
	delete(s.audio, id)
	s.audioMu.Unlock()
	if stream != nil {
		stream.Close()
	}
}

// AudioStreamCount reports the number of live audio sub-streams.
func (s *Source) AudioStreamCount() int {
	s.audioMu.Lock()
	defer s.audioMu.Unlock()
	return len(s.audio)
}

// clearAudioStreams drops all sub-streams from the engine loop, the
// same ordering teardown of engine-side stream state takes. If the
// submission is rejected during shutdown, Close releases them directly.
func (s *Source) clearAudioStreams() {
	s.deps.Loop.Submit(func(context.Context) {
		s.closeAudioStreams()
	})
}

func (s *Source) closeAudioStreams() {
	s.audioMu.Lock()
	streams := s.audio
	s.audio = make(map[string]AudioStream)
	s.audioMu.Unlock()
	for _, stream := range streams {
		stream.Close()
	}
}
