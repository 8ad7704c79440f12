package domain

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
