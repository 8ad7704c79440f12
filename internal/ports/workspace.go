package ports

import "github.com/axzolotle/learning-intern/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
