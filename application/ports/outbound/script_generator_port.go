package outbound

import "context"

type GenerateScriptRequest struct {
	Stories       []string
	LocationLabel string
}

type ScriptGeneratorPort interface {
	Generate(ctx context.Context, req GenerateScriptRequest) (string, error)
}
