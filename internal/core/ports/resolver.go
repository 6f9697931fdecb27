package ports

// FileResolver expands command line arguments into regular files.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type FileResolver interface {
	// ResolveFiles expands globs and directories into a sorted, unique list of files.
	ResolveFiles(args []string) ([]string, error)
}
