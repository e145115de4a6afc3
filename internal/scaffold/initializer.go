package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/swiftinit-labs/swiftinit/internal/naming"
)

// PackageInitializer writes the skeleton for a new package into a target
// directory. Construct one with New, run WritePackageStructure once, then
// discard it; the file system is the only durable effect.
type PackageInitializer struct {
	mode InitMode
	name string
	root string
	out  io.Writer
}

// New builds an initializer for the given mode and target directory. The
// package name is the directory's base name and must be a legal identifier.
// Progress lines are printed to out as files are created; nothing is
// written until WritePackageStructure runs.
func New(mode InitMode, dir string, out io.Writer) (*PackageInitializer, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving target directory: %w", err)
	}

	name := filepath.Base(abs)
	if !naming.IsValidIdentifier(name) {
		return nil, &InvalidNameError{Name: name}
	}

	if out == nil {
		out = io.Discard
	}
	return &PackageInitializer{mode: mode, name: name, root: abs, out: out}, nil
}

// Mode returns the init mode the initializer was constructed with.
func (p *PackageInitializer) Mode() InitMode { return p.mode }

// PackageName returns the name derived from the target directory.
func (p *PackageInitializer) PackageName() string { return p.name }

// Dir returns the absolute target directory captured at construction.
func (p *PackageInitializer) Dir() string { return p.root }

// WritePackageStructure generates the package skeleton. The manifest step
// is the "already initialized" gate: if a manifest exists the call fails
// with ErrManifestExists and nothing else runs. The remaining steps skip
// paths that already exist, so a partial run can safely be re-attempted
// once the manifest conflict is resolved. Any failure aborts the rest of
// the sequence; files written before it are left in place.
func (p *PackageInitializer) WritePackageStructure() error {
	if err := p.writeManifest(); err != nil {
		return err
	}
	if err := p.writeGitIgnore(); err != nil {
		return err
	}
	if err := p.writeSources(); err != nil {
		return err
	}
	if err := p.writeModuleMap(); err != nil {
		return err
	}
	return p.writeTests()
}

// writeManifest creates the manifest, failing if one is already present.
func (p *PackageInitializer) writeManifest() error {
	path := filepath.Join(p.root, ManifestFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w at %s (directory is already an initialized package)", ErrManifestExists, path)
	}
	return p.writeArtifact(manifestArtifact)
}

// writeGitIgnore creates the ignore file unless one exists.
func (p *PackageInitializer) writeGitIgnore() error {
	if exists(filepath.Join(p.root, IgnoreFileName)) {
		return nil
	}
	return p.writeArtifact(ignoreArtifact)
}

// writeSources creates Sources/ with the mode's starter file. System-module
// packages wrap a pre-built library, so the step is skipped for them; an
// existing Sources/ directory is left untouched.
func (p *PackageInitializer) writeSources() error {
	if p.mode == ModeSystemModule {
		return nil
	}

	sources := filepath.Join(p.root, SourcesDirName)
	if exists(sources) {
		return nil
	}
	if err := os.MkdirAll(sources, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", SourcesDirName, err)
	}
	return p.writeArtifact(sourceArtifacts[p.mode])
}

// writeModuleMap creates module.modulemap for system-module packages.
func (p *PackageInitializer) writeModuleMap() error {
	if p.mode != ModeSystemModule {
		return nil
	}
	if exists(filepath.Join(p.root, ModuleMapFileName)) {
		return nil
	}
	return p.writeArtifact(moduleMapArtifact)
}

// writeTests creates the Tests/ tree. Executables get an empty Tests/
// directory; only libraries get the runner and stub files. System-module
// packages get nothing.
func (p *PackageInitializer) writeTests() error {
	if p.mode == ModeSystemModule {
		return nil
	}

	tests := filepath.Join(p.root, TestsDirName)
	if exists(tests) {
		return nil
	}
	if err := os.MkdirAll(tests, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", TestsDirName, err)
	}

	if p.mode != ModeLibrary {
		return nil
	}
	if err := p.writeArtifact(testRunnerArtifact); err != nil {
		return err
	}
	return p.writeArtifact(testStubArtifact)
}

// writeArtifact renders one artifact into a buffer, announces it, and lands
// it with a single write. Parent directories are created as needed.
func (p *PackageInitializer) writeArtifact(a artifact) error {
	rel := a.relPath(p.name)
	content, err := renderArtifact(a, p.name)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Creating %s\n", filepath.ToSlash(rel))

	path := filepath.Join(p.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
