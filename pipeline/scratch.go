package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// scratch is a per-invocation working directory for intermediate media.
//
// It lives next to the final output so the finishing rename stays on one
// filesystem, and its name carries a UUID so concurrent invocations never
// collide.
type scratch struct {
	dir string
}

func newScratch(outPath string) (*scratch, error) {
	dir := filepath.Join(filepath.Dir(outPath), ".quotereel-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return &scratch{dir: dir}, nil
}

func (s *scratch) path(name string) string {
	return filepath.Join(s.dir, name)
}

// release removes the scratch directory. A failed removal leaks disk, not
// correctness, so it is reported as a warning instead of an error.
func (s *scratch) release() {
	if err := os.RemoveAll(s.dir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to remove scratch directory %s: %v\n", s.dir, err)
	}
}
