// internal/writer/types.go
package writer

import "os"

// Target is one output file and the value serialized into it.
type Target struct {
	Path    string
	Payload any
}

// Plan is the fully-built write plan for one run.
type Plan struct {
	Indent  int
	Targets []Target
}

// Sink abstracts the filesystem operations the writer needs.
type Sink interface {
	WriteFile(path string, data []byte) error
	Remove(path string) error
}

// OSSink writes to the local filesystem.
// The destination directory must already exist.
type OSSink struct{}

func (OSSink) WriteFile(path string, data []byte) error { return os.WriteFile(path, data, 0o644) }

func (OSSink) Remove(path string) error { return os.Remove(path) }
