// Package registry parses the DNVGL Application Version Manager document
// (ApplicationVersions.xml) into an ordered in-memory registry and resolves
// executable paths and installation directories against it.
//
// The registry is an explicit value: it is built per Load call, carries no
// global state, and is meant to be discarded when the caller is done with it.
// Callers that want caching can hold on to the value themselves.
package registry

import (
	"strings"
)

// Version is a single registered application version. Values are immutable
// once parsed.
type Version struct {
	// Number is the lowercased version identifier, e.g. "v4.2".
	Number string `json:"version"`
	// ExePath is the executable path as recorded in the document.
	ExePath string `json:"exe_path"`
	// InstallDir is the installation directory as recorded in the document.
	InstallDir string `json:"install_dir"`
	// Default marks the version selected when no version is requested.
	// The document may flag zero or several versions; see VersionTable.Default.
	Default bool `json:"default"`

	// Carried through from the document, unused during resolution.
	Platform    string `json:"platform"`
	ProductType string `json:"product_type"`
	Category    string `json:"category"`
}

// VersionTable holds the versions of one application in document order,
// keyed by lowercased version number.
type VersionTable struct {
	numbers  []string
	versions map[string]Version
}

// Len returns the number of registered versions.
func (t *VersionTable) Len() int {
	return len(t.numbers)
}

// Numbers returns the version numbers in document order.
func (t *VersionTable) Numbers() []string {
	out := make([]string, len(t.numbers))
	copy(out, t.numbers)
	return out
}

// Version looks up a version by number. The lookup is case-insensitive.
func (t *VersionTable) Version(number string) (Version, bool) {
	v, ok := t.versions[strings.ToLower(number)]
	return v, ok
}

// Default returns the version flagged as default. When several versions are
// flagged, the last one in document order wins; Application Version Manager
// itself behaves this way, so the quirk is kept rather than fixed.
func (t *VersionTable) Default() (Version, bool) {
	var def Version
	var found bool
	for _, num := range t.numbers {
		if v := t.versions[num]; v.Default {
			def, found = v, true
		}
	}
	return def, found
}

// Registry is an ordered mapping of lowercased application name to its
// version table.
type Registry struct {
	names []string
	apps  map[string]*VersionTable
}

func newRegistry() *Registry {
	return &Registry{apps: make(map[string]*VersionTable)}
}

// Len returns the number of registered applications.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns the application names in document order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// App looks up an application by name. The lookup is case-insensitive.
func (r *Registry) App(name string) (*VersionTable, bool) {
	t, ok := r.apps[strings.ToLower(name)]
	return t, ok
}

// add inserts a parsed application, replacing any earlier entry with the
// same name while keeping its original position.
func (r *Registry) add(name string, versions []Version) {
	name = strings.ToLower(name)
	t := &VersionTable{versions: make(map[string]Version, len(versions))}
	for _, v := range versions {
		if _, seen := t.versions[v.Number]; !seen {
			t.numbers = append(t.numbers, v.Number)
		}
		t.versions[v.Number] = v
	}
	if _, seen := r.apps[name]; !seen {
		r.names = append(r.names, name)
	}
	r.apps[name] = t
}
