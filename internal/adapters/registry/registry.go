// Package registry implements a filesystem artifact registry tier.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/oklog/ulid/v2"
	"github.com/wesleykendall/footing/internal/core/domain"
	"github.com/wesleykendall/footing/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644

	payloadName  = "payload"
	metadataName = "metadata.json"
)

var (
	// ErrArtifactNotFound is returned by Copy when the source artifact is
	// absent from this tier.
	ErrArtifactNotFound = zerr.New("artifact not found in registry")

	// ErrArtifactCorrupted is returned when a stored payload no longer
	// matches its recorded fingerprint.
	ErrArtifactCorrupted = zerr.New("artifact payload does not match fingerprint")
)

// metadata is the sidecar record written next to every stored payload.
type metadata struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Ref         string `json:"ref"`
	Fingerprint string `json:"fingerprint"`
	Directory   bool   `json:"directory,omitempty"`
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
}

// Registry is one filesystem-backed tier. Artifacts live under
// <root>/<kind>/<name>/<ref>/ with the payload and a metadata sidecar.
// Pushes stage into a uniquely-named directory and rename into place, so
// racing writers resolve last-writer-wins.
type Registry struct {
	root string
}

// Opener implements ports.RegistryOpener for filesystem tiers.
type Opener struct{}

// NewOpener creates a filesystem registry opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open creates or opens the registry rooted at the given directory.
func (o *Opener) Open(root string) (ports.Registry, error) {
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create registry root"), "root", root)
	}
	return &Registry{root: filepath.Clean(root)}, nil
}

func (r *Registry) artifactDir(build domain.Build) string {
	return filepath.Join(r.root, string(build.Kind), build.Name, build.Ref)
}

// Find looks up an artifact by kind, name, and ref. Returns nil, nil when
// absent. Stored payloads are re-fingerprinted on lookup so a corrupted
// entry surfaces as an error instead of a silent stale hit.
func (r *Registry) Find(build domain.Build) (*domain.Build, error) {
	dir := r.artifactDir(build)

	data, err := os.ReadFile(filepath.Join(dir, metadataName)) //nolint:gosec // Path is derived from the registry root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read artifact metadata"), "dir", dir)
	}

	var meta metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse artifact metadata"), "dir", dir)
	}
	if meta.Ref != build.Ref {
		return nil, nil
	}

	payload := filepath.Join(dir, payloadName)
	fingerprint, err := fingerprintPath(payload)
	if err != nil {
		return nil, err
	}
	if fingerprint != meta.Fingerprint {
		return nil, zerr.With(zerr.With(ErrArtifactCorrupted, "dir", dir), "expected", meta.Fingerprint)
	}

	found := build
	found.Path = payload
	return &found, nil
}

// Push stores the payload at build.Path under the descriptor's identity.
func (r *Registry) Push(build domain.Build) error {
	if build.Path == "" {
		return domain.ErrArtifactPathMissing
	}

	info, err := os.Stat(build.Path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat artifact payload"), "path", build.Path)
	}

	dir := r.artifactDir(build)
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create artifact directory")
	}

	staging := filepath.Join(parent, ".staging-"+ulid.Make().String())
	if err := os.MkdirAll(staging, dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create staging directory")
	}
	defer os.RemoveAll(staging) //nolint:errcheck // Best effort cleanup

	payload := filepath.Join(staging, payloadName)
	if info.IsDir() {
		if err := copyTree(build.Path, payload); err != nil {
			return err
		}
	} else {
		if err := copyFile(build.Path, payload); err != nil {
			return err
		}
	}

	fingerprint, err := fingerprintPath(payload)
	if err != nil {
		return err
	}

	meta := metadata{
		Kind:        string(build.Kind),
		Name:        build.Name,
		Ref:         build.Ref,
		Fingerprint: fingerprint,
		Directory:   info.IsDir(),
		ID:          ulid.Make().String(),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal artifact metadata")
	}
	if err := os.WriteFile(filepath.Join(staging, metadataName), metaData, filePerm); err != nil {
		return zerr.Wrap(err, "failed to write artifact metadata")
	}

	// Last writer wins: drop any existing entry, then move the staged one
	// into place.
	if err := os.RemoveAll(dir); err != nil {
		return zerr.Wrap(err, "failed to replace existing artifact")
	}
	if err := os.Rename(staging, dir); err != nil {
		return zerr.Wrap(err, "failed to commit artifact")
	}
	return nil
}

// Copy promotes an artifact from this tier into another without rebuilding.
func (r *Registry) Copy(build domain.Build, to ports.Registry) error {
	found, err := r.Find(build)
	if err != nil {
		return err
	}
	if found == nil {
		return zerr.With(zerr.With(ErrArtifactNotFound, "name", build.Name), "ref", build.Ref)
	}
	return to.Push(*found)
}

// fingerprintPath computes a deterministic xxhash fingerprint for a file or
// directory payload. Directories hash each file's relative path followed by
// its contents, in sorted path order.
func fingerprintPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat payload"), "path", path)
	}

	h := xxhash.New()
	if !info.IsDir() {
		if err := hashFileInto(h, path); err != nil {
			return "", err
		}
		return fmt.Sprintf("%016x", h.Sum64()), nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to walk payload"), "path", path)
	}
	sort.Strings(files)

	for _, file := range files {
		rel, err := filepath.Rel(path, file)
		if err != nil {
			return "", zerr.Wrap(err, "failed to compute payload-relative path")
		}
		_, _ = h.WriteString(rel)
		_, _ = h.Write([]byte{0})
		if err := hashFileInto(h, file); err != nil {
			return "", err
		}
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

func hashFileInto(h *xxhash.Digest, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path is inside the registry or staging dir
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open payload file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(h, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash payload file"), "path", path)
	}
	return nil
}

// copyTree replicates a directory payload, copying files concurrently with
// a bounded worker pool.
func copyTree(src, dst string) error {
	type job struct {
		src string
		dst string
	}
	var jobs []job

	err := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(src, p)
		if relErr != nil {
			return relErr
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, dirPerm)
		}
		jobs = append(jobs, job{src: p, dst: target})
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to walk payload tree"), "path", src)
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, j := range jobs {
		g.Go(func() error {
			return copyFile(j.src, j.dst)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Paths are controlled by the registry
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open payload source"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.Create(dst) //nolint:gosec // Paths are controlled by the registry
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create payload copy"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy payload"), "path", dst)
	}
	return out.Close()
}
