package render

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/oasgen/oasgen/ir"
)

// FileSink writes one rendered artifact at a caller-owned destination.
// Idempotent from the driver's perspective; the sink may de-duplicate
// or clean a prior output tree before Run is called.
type FileSink interface {
	Write(relativePath string, data []byte) error
}

// TemplateEngine renders one emission unit's context into target
// source text. Templates and the output language belong to the
// engine, not to this package.
type TemplateEngine interface {
	Render(templateName string, ctx any) (string, error)
}

// Emission-unit template names. The engine decides what these map to;
// this package only guarantees one call per named type, per operation,
// and once each for the client and the root module index.
const (
	TemplateModel    = "model"
	TemplateBuilder  = "builder"
	TemplateClient   = "client"
	TemplateIndex    = "index"
	TemplateManifest = "manifest"
)

// ManifestEntry records one file Run wrote, for the manifest it emits
// alongside the rendered tree.
type ManifestEntry struct {
	Path         string
	TemplateName string
}

// RunResult is the outcome of one Driver.Run call.
type RunResult struct {
	Manifest []ManifestEntry
}

// Driver walks an IR and drives a TemplateEngine/FileSink pair over it.
type Driver struct {
	// Extension is the target language's file extension (without the
	// leading dot), e.g. "go", "rs". Required.
	Extension string
	// Concurrency bounds how many emissions run at once. Zero means
	// runtime.GOMAXPROCS(0).
	Concurrency int
	// ManifestFilename names the project manifest file Run emits at the
	// output tree's root (e.g. "go.mod"), alongside the rendered
	// manifest.json file list. Empty skips manifest emission, for
	// target languages with no project-manifest equivalent.
	ManifestFilename string
}

// NewDriver returns a Driver emitting files with the given extension.
func NewDriver(extension string) *Driver {
	return &Driver{Extension: extension}
}

// resolver looks up a referenced type's emitted name, for templates
// that need to spell out a field or element type.
type resolver func(ir.TypeId) ir.Identifier

// TypeContext is the context handed to the TemplateModel template.
type TypeContext struct {
	*ir.NamedType
	ResolveName resolver
}

// OperationContext is the context handed to the TemplateBuilder template.
type OperationContext struct {
	*ir.Operation
	ResolveName resolver
}

// ClientContext is the context handed to the TemplateClient template.
type ClientContext struct {
	*ir.IR
	ResolveName resolver
}

// IndexContext is the context handed to the TemplateIndex template.
type IndexContext struct {
	*ir.IR
	ResolveName resolver
}

// ManifestContext is the context handed to the TemplateManifest
// template.
type ManifestContext struct {
	*ir.IR
	ResolveName resolver
}

// Run renders every type, every operation, the client, and the root
// module index, writing each through sink and returning the manifest
// of what was written. A nil tree or a tree with no types and no
// operations produces an empty, error-free result.
func (d *Driver) Run(ctx context.Context, tree *ir.IR, sink FileSink, engine TemplateEngine) (*RunResult, error) {
	if tree == nil || (len(tree.Types) == 0 && len(tree.Operations) == 0) {
		return &RunResult{}, nil
	}

	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	sem := make(chan struct{}, concurrency)
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var manifest []ManifestEntry

	resolve := func(id ir.TypeId) ir.Identifier {
		if nt, ok := tree.Lookup(id); ok {
			return nt.Name
		}
		return ""
	}

	emit := func(path, templateName string, tctx any) {
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			if gctx.Err() != nil {
				return gctx.Err()
			}

			rendered, err := engine.Render(templateName, tctx)
			if err != nil {
				return fmt.Errorf("render: %s: %w", path, err)
			}

			buf := getRenderBuffer()
			buf.WriteString(rendered)
			writeErr := sink.Write(path, buf.Bytes())
			putRenderBuffer(buf)
			if writeErr != nil {
				return fmt.Errorf("render: write %s: %w", path, writeErr)
			}

			mu.Lock()
			manifest = append(manifest, ManifestEntry{Path: path, TemplateName: templateName})
			mu.Unlock()
			return nil
		})
	}

	for _, id := range tree.TopoOrder() {
		nt, ok := tree.Lookup(id)
		if !ok {
			continue
		}
		dir := "src/models"
		if nt.Module != "" {
			dir = "src/models/" + nt.Module
		}
		path := fmt.Sprintf("%s/%s.%s", dir, nt.Name, d.Extension)
		emit(path, TemplateModel, TypeContext{NamedType: nt, ResolveName: resolve})
	}

	for i := range tree.Operations {
		op := tree.Operations[i]
		path := fmt.Sprintf("src/builders/%s.%s", op.Id, d.Extension)
		emit(path, TemplateBuilder, OperationContext{Operation: &op, ResolveName: resolve})
	}

	emit("src/client."+d.Extension, TemplateClient, ClientContext{IR: tree, ResolveName: resolve})
	emit("src/lib."+d.Extension, TemplateIndex, IndexContext{IR: tree, ResolveName: resolve})
	if d.ManifestFilename != "" {
		emit(d.ManifestFilename, TemplateManifest, ManifestContext{IR: tree, ResolveName: resolve})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(manifest, func(i, j int) bool { return manifest[i].Path < manifest[j].Path })

	manifestBytes, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: encode manifest: %w", err)
	}
	if err := sink.Write("manifest.json", manifestBytes); err != nil {
		return nil, fmt.Errorf("render: write manifest: %w", err)
	}

	return &RunResult{Manifest: manifest}, nil
}
