package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed templates
var templatesFS embed.FS

// Generated file and directory names, relative to the package root.
const (
	ManifestFileName  = "Package.swift"
	IgnoreFileName    = ".gitignore"
	ModuleMapFileName = "module.modulemap"
	SourcesDirName    = "Sources"
	TestsDirName      = "Tests"
)

// templateData carries the only variable the artifact templates use. The
// package name doubles as the generated module name and type name; there
// is no independent naming.
type templateData struct {
	Name string
}

// artifact ties one generated file to its template and output location.
type artifact struct {
	template string                   // file under templates/
	relPath  func(name string) string // path relative to the package root
}

func fixedPath(p string) func(string) string {
	return func(string) string { return p }
}

// The artifact table. Downstream tooling parses the generated files, so the
// templates are golden: tests assert their rendered bytes exactly.
var (
	manifestArtifact = artifact{"Package.swift.tmpl", fixedPath(ManifestFileName)}
	ignoreArtifact   = artifact{"gitignore.tmpl", fixedPath(IgnoreFileName)}

	moduleMapArtifact = artifact{"module.modulemap.tmpl", fixedPath(ModuleMapFileName)}

	testRunnerArtifact = artifact{"LinuxMain.swift.tmpl", fixedPath(filepath.Join(TestsDirName, "LinuxMain.swift"))}
	testStubArtifact   = artifact{"TypeTests.swift.tmpl", func(name string) string {
		return filepath.Join(TestsDirName, name, name+"Tests.swift")
	}}

	// sourceArtifacts maps each source-bearing mode to the single file its
	// Sources/ tree starts with. System-module mode has no entry: it
	// generates no sources.
	sourceArtifacts = map[InitMode]artifact{
		ModeExecutable: {"main.swift.tmpl", fixedPath(filepath.Join(SourcesDirName, "main.swift"))},
		ModeLibrary: {"Type.swift.tmpl", func(name string) string {
			return filepath.Join(SourcesDirName, name+".swift")
		}},
	}
)

// renderArtifact executes an artifact's template into an in-memory buffer
// and returns the exact bytes to write.
func renderArtifact(a artifact, name string) ([]byte, error) {
	raw, err := templatesFS.ReadFile("templates/" + a.template)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", a.template, err)
	}

	tmpl, err := template.New(a.template).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", a.template, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Name: name}); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", a.template, err)
	}
	return buf.Bytes(), nil
}

// Layout lists the paths mode creates for a package called name, in
// creation order, relative to the package root. Directories carry a
// trailing slash. The modes command renders this table and the golden
// tests parameterize over it.
func Layout(mode InitMode, name string) []string {
	paths := []string{
		manifestArtifact.relPath(name),
		ignoreArtifact.relPath(name),
	}

	if src, ok := sourceArtifacts[mode]; ok {
		paths = append(paths, SourcesDirName+"/", filepath.ToSlash(src.relPath(name)))
	}

	if mode == ModeSystemModule {
		return append(paths, moduleMapArtifact.relPath(name))
	}

	paths = append(paths, TestsDirName+"/")
	if mode == ModeLibrary {
		paths = append(paths,
			filepath.ToSlash(testRunnerArtifact.relPath(name)),
			filepath.ToSlash(testStubArtifact.relPath(name)),
		)
	}
	return paths
}
