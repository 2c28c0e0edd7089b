package oasgen

import (
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/oasgen/oasgen/config"
	"github.com/oasgen/oasgen/diagnostics"
	"github.com/oasgen/oasgen/ir"
	"github.com/oasgen/oasgen/naming"
	"github.com/oasgen/oasgen/oaserrors"
	"github.com/oasgen/oasgen/overlay"
	"github.com/oasgen/oasgen/parser"
	"github.com/oasgen/oasgen/schema"
	"github.com/oasgen/oasgen/specloader"
	"github.com/oasgen/oasgen/synth"
)

// Pipeline runs the full specloader -> refresolver/naming/schema ->
// synth -> ir sequence over one OpenAPI document.
type Pipeline struct{}

// New returns a Pipeline. A Pipeline holds no state and is safe to
// reuse across Run calls.
func New() *Pipeline {
	return &Pipeline{}
}

// Result is the outcome of one Run: the resolved IR plus any
// non-fatal findings accumulated along the way.
type Result struct {
	IR          *ir.IR
	Diagnostics *diagnostics.Bag
}

type runConfig struct {
	format         specloader.Format
	maxSize        int64
	cfg            *config.Config
	overlayPath    string
	projectName    string
	projectVersion string
}

// Option configures one Run call.
type Option func(*runConfig) error

// WithConfigFile loads a configuration document (name mapping, ignore
// rules, project metadata) from path.
func WithConfigFile(path string) Option {
	return func(rc *runConfig) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return &oaserrors.ConfigError{Option: "config", Value: path, Message: "failed to read configuration file", Cause: err}
		}
		cfg, err := config.Decode(data)
		if err != nil {
			return err
		}
		rc.cfg = cfg
		return nil
	}
}

// WithConfig sets an already-decoded configuration, overriding any
// WithConfigFile in the same option list.
func WithConfig(cfg *config.Config) Option {
	return func(rc *runConfig) error {
		rc.cfg = cfg
		return nil
	}
}

// WithOverlay applies the OpenAPI Overlay document at path to the
// input spec before it is parsed by the loader. Independent of the
// configuration document's ignore.* rules (see config package docs).
func WithOverlay(path string) Option {
	return func(rc *runConfig) error {
		rc.overlayPath = path
		return nil
	}
}

// WithFormat sets the Format handed to specloader.Load instead of the
// one guessed from the file extension. Load detects the encoding from
// content either way, so this does not change how the bytes decode.
func WithFormat(format specloader.Format) Option {
	return func(rc *runConfig) error {
		rc.format = format
		return nil
	}
}

// WithMaxDocumentSize overrides the default input-document size
// ceiling.
func WithMaxDocumentSize(n int64) Option {
	return func(rc *runConfig) error {
		rc.maxSize = n
		return nil
	}
}

// WithProjectName overrides the configuration document's
// project_metadata.name for this run.
func WithProjectName(name string) Option {
	return func(rc *runConfig) error {
		rc.projectName = name
		return nil
	}
}

// WithProjectVersion overrides the configuration document's
// project_metadata.version for this run.
func WithProjectVersion(version string) Option {
	return func(rc *runConfig) error {
		rc.projectVersion = version
		return nil
	}
}

// Run loads specPath, applies any configured overlay and ignore
// rules, and synthesizes the IR. A document with no paths produces an
// empty, error-free Result rather than an error.
func (p *Pipeline) Run(specPath string, opts ...Option) (*Result, error) {
	rc := &runConfig{}
	for _, opt := range opts {
		if err := opt(rc); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "spec", Value: specPath, Message: "failed to read input document", Cause: err}
	}

	if rc.overlayPath != "" {
		data, err = applyOverlayFile(data, rc.overlayPath)
		if err != nil {
			return nil, err
		}
	}

	format := rc.format
	if format == specloader.FormatAuto {
		format = detectFormat(specPath)
	}

	doc, err := specloader.Load(data, format, rc.maxSize)
	if err != nil {
		return nil, err
	}

	norm := schema.New(doc, rc.cfg.Deriver(), rc.cfg.ModulePath)
	rc.cfg.ApplyIgnoredComponents(norm)

	schemaResult, err := norm.NormalizeComponents()
	if err != nil {
		return nil, err
	}

	synthesizer := synth.New(doc, norm, rc.cfg)
	ops, err := synthesizer.SynthesizeOperations(rc.cfg.IgnoresPath)
	if err != nil {
		return nil, err
	}

	diags := diagnostics.NewBag()
	diags.Merge(schemaResult.Diagnostics)
	diags.Merge(synthesizer.Diagnostics())

	meta := rc.cfg.Metadata()
	if rc.projectName != "" {
		meta.Name = rc.projectName
	}
	if rc.projectVersion != "" {
		meta.Version = rc.projectVersion
	}

	tree := &ir.IR{
		Types:           schemaResult.Types,
		Operations:      ops,
		RootModule:      rootModuleName(doc),
		ProjectMetadata: ir.ProjectMetadata{Name: meta.Name, Version: meta.Version},
	}

	return &Result{IR: tree, Diagnostics: diags}, nil
}

// rootModuleName derives the IR's module identifier from the
// document's info.title, falling back to a generic name when absent.
func rootModuleName(doc *specloader.Document) ir.Identifier {
	node, ok := doc.At("/info/title")
	if !ok {
		return "API"
	}
	title, ok := node.Value().(string)
	if !ok || title == "" {
		return "API"
	}
	return ir.Identifier(naming.Escape(naming.TypeName(title)))
}

// detectFormat guesses the input encoding from specPath's extension,
// defaulting to YAML (the more permissive superset) when unrecognized.
func detectFormat(specPath string) specloader.Format {
	switch strings.ToLower(filepath.Ext(specPath)) {
	case ".json":
		return specloader.FormatJSON
	default:
		return specloader.FormatYAML
	}
}

// applyOverlayFile parses data with the document parser, applies the
// overlay document at overlayPath, and re-marshals the result back to
// YAML bytes for the loader to pick up — mirroring overlay.
// ReparseDocument's own round-trip, since the loader only accepts raw
// bytes.
func applyOverlayFile(data []byte, overlayPath string) ([]byte, error) {
	parsed, err := parser.New().ParseBytes(data)
	if err != nil {
		return nil, err
	}

	ov, err := overlay.ParseOverlayFile(overlayPath)
	if err != nil {
		return nil, err
	}

	result, err := overlay.NewApplier().ApplyParsed(parsed, ov)
	if err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(result.Document)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "overlay", Value: overlayPath, Message: "failed to re-encode overlaid document", Cause: err}
	}
	return out, nil
}
