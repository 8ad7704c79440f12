package ports

// WorkspaceLocator finds an agegroup workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
