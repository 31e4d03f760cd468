// internal/validate/finding.go
package validate

import "fmt"

// Kind names the catalog a finding belongs to.
type Kind string

const (
	KindSensor Kind = "Sensor"
	KindAsset  Kind = "Asset"
)

// Placeholder ids used when a finding cannot name a record.
const (
	// EmptyID marks a record whose own id is empty.
	EmptyID = "<empty id>"
	// AnyID marks an aggregate finding not tied to one record.
	AnyID = "*"
)

// Finding is one violated rule on user data.
// Findings are data, not errors: they are collected, never returned as error.
type Finding struct {
	Kind    Kind
	ID      string
	Message string
}

// String renders the finding as one output line.
func (f Finding) String() string {
	return fmt.Sprintf("%s %s: %s", f.Kind, f.ID, f.Message)
}

// findings accumulates findings for one catalog.
type findings struct {
	kind Kind
	list []Finding
}

func (fs *findings) add(id, format string, args ...any) {
	if id == "" {
		id = EmptyID
	}
	fs.list = append(fs.list, Finding{
		Kind:    fs.kind,
		ID:      id,
		Message: fmt.Sprintf(format, args...),
	})
}

// result never returns nil so callers can range and len without checks.
func (fs *findings) result() []Finding {
	if fs.list == nil {
		return []Finding{}
	}
	return fs.list
}
