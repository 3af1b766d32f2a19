package outbound

import "context"

type SynthesizeSpeechRequest struct {
	Script        string
	LocationLabel string
}

// SpeechSynthesizerPort renders a script as an audio file and returns its
// path.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) (string, error)
}
