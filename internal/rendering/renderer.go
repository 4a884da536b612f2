package rendering

import (
	"context"

	"github.com/jonathan/resume-builder/internal/types"
)

// Renderer turns a resume document into PDF bytes. Implementations read the
// document and nothing else: no shared state survives between calls, so
// concurrent renders need no coordination.
type Renderer interface {
	Render(ctx context.Context, doc *types.Resume) ([]byte, error)
}
