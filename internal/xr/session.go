// Package xr requests an immersive (VR/AR) session in the background.
//
// The request never blocks the caller: Request returns a Pending handle
// immediately and the outcome is observed through it. Discovery follows the
// OpenXR loader convention of an active runtime manifest.
package xr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnsupported is returned when no immersive runtime is installed.
var ErrUnsupported = errors.New("xr: no immersive runtime available")

// Floor is a mesh usable as the walkable floor of the session.
type Floor interface {
	Name() string
}

// Options configures a session request.
type Options struct {
	FloorMeshes []Floor

	// ManifestPaths overrides runtime discovery; empty uses DefaultManifestPaths.
	ManifestPaths []string
}

// Runtime is the runtime description read from its manifest.
type Runtime struct {
	Name        string `json:"name"`
	LibraryPath string `json:"library_path"`
}

type manifest struct {
	FileFormatVersion string  `json:"file_format_version"`
	Runtime           Runtime `json:"runtime"`
}

// Session is an immersive session bound to its floor meshes.
type Session struct {
	Runtime      Runtime
	ManifestPath string
	Floors       []Floor
}

// FloorNames lists the names of the floor meshes.
func (s *Session) FloorNames() []string {
	names := make([]string, 0, len(s.Floors))
	for _, f := range s.Floors {
		names = append(names, f.Name())
	}
	return names
}

// DefaultManifestPaths returns the manifest locations in lookup order.
func DefaultManifestPaths() []string {
	var paths []string
	if p := os.Getenv("XR_RUNTIME_JSON"); p != "" {
		paths = append(paths, p)
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		paths = append(paths, filepath.Join(configHome, "openxr", "1", "active_runtime.json"))
	}
	paths = append(paths, filepath.Join("/etc", "xdg", "openxr", "1", "active_runtime.json"))
	return paths
}

// Pending is the handle of an in-flight session request.
type Pending struct {
	done    chan struct{}
	session *Session
	err     error
}

// Request starts discovering a runtime in a new goroutine. Cancelling ctx
// abandons the request with ctx.Err().
func Request(ctx context.Context, opts Options) *Pending {
	p := &Pending{done: make(chan struct{})}
	paths := opts.ManifestPaths
	if len(paths) == 0 {
		paths = DefaultManifestPaths()
	}
	floors := append([]Floor(nil), opts.FloorMeshes...)

	result := make(chan *Pending, 1)
	go func() {
		s, err := discover(paths)
		if err == nil {
			s.Floors = floors
		}
		result <- &Pending{session: s, err: err}
	}()

	go func() {
		defer close(p.done)
		select {
		case r := <-result:
			p.session, p.err = r.session, r.err
		case <-ctx.Done():
			p.err = ctx.Err()
		}
	}()
	return p
}

// Done is closed once the request has completed or was cancelled.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Result blocks until the request completes.
func (p *Pending) Result() (*Session, error) {
	<-p.done
	return p.session, p.err
}

// Poll returns the result without blocking; done is false while still pending.
func (p *Pending) Poll() (s *Session, done bool, err error) {
	select {
	case <-p.done:
		return p.session, true, p.err
	default:
		return nil, false, nil
	}
}

func discover(paths []string) (*Session, error) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("xr: read runtime manifest: %w", err)
		}
		var m manifest
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("xr: parse runtime manifest %s: %w", path, err)
		}
		if m.Runtime.LibraryPath == "" {
			return nil, fmt.Errorf("xr: runtime manifest %s has no library_path", path)
		}
		if m.Runtime.Name == "" {
			m.Runtime.Name = filepath.Base(m.Runtime.LibraryPath)
		}
		return &Session{Runtime: m.Runtime, ManifestPath: path}, nil
	}
	return nil, ErrUnsupported
}
