package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/oasgen/oasgen"
	"github.com/oasgen/oasgen/internal/filesink"
	"github.com/oasgen/oasgen/internal/goengine"
	"github.com/oasgen/oasgen/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Spec        specInput `json:"spec"                    jsonschema:"The OAS document to generate code from"`
	ConfigPath  string    `json:"config_path,omitempty"   jsonschema:"Path to a configuration file (name mapping, ignore rules, project metadata)"`
	OverlayPath string    `json:"overlay_path,omitempty"  jsonschema:"Path to an OpenAPI Overlay document applied before parsing"`
	ProjectName string    `json:"project_name,omitempty"  jsonschema:"Project name, overrides the spec's info.title-derived module name"`
	OutputDir   string    `json:"output_dir"              jsonschema:"Directory to write generated files to"`
}

type generateOutput struct {
	OutputDir           string   `json:"output_dir"`
	ProjectName         string   `json:"project_name"`
	FileCount           int      `json:"file_count"`
	Files               []string `json:"files"`
	GeneratedTypes      int      `json:"generated_types"`
	GeneratedOperations int      `json:"generated_operations"`
	DiagnosticCount     int      `json:"diagnostic_count"`
}

// handleGenerate implements the "generate" MCP tool: it runs the same
// Pipeline and Go rendering driver cmd/oasgen drives, but resolves its
// input spec through specInput (file, URL, or inline content) instead
// of a single CLI positional argument.
func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	specPath, cleanup, err := input.Spec.materialize()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	defer cleanup()

	var opts []oasgen.Option
	if input.ConfigPath != "" {
		opts = append(opts, oasgen.WithConfigFile(input.ConfigPath))
	}
	if input.OverlayPath != "" {
		opts = append(opts, oasgen.WithOverlay(input.OverlayPath))
	}
	if input.ProjectName != "" {
		opts = append(opts, oasgen.WithProjectName(input.ProjectName))
	}

	result, err := oasgen.New().Run(specPath, opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	projectName := result.IR.ProjectMetadata.Name
	if projectName == "" {
		projectName = string(result.IR.RootModule)
	}
	outDir := input.OutputDir + string(os.PathSeparator) + projectName

	sink := filesink.NewDisk(outDir)
	engine := goengine.New(result.IR)
	driver := render.NewDriver("go")
	driver.ManifestFilename = "go.mod"

	runResult, err := driver.Run(context.Background(), result.IR, sink, engine)
	if err != nil {
		return errResult(fmt.Errorf("rendering: %w", err)), generateOutput{}, nil
	}

	output := generateOutput{
		OutputDir:           outDir,
		ProjectName:         projectName,
		FileCount:           len(runResult.Manifest),
		GeneratedTypes:      len(result.IR.Types),
		GeneratedOperations: len(result.IR.Operations),
		DiagnosticCount:     result.Diagnostics.Len(),
	}
	output.Files = makeSlice[string](len(runResult.Manifest))
	for _, entry := range runResult.Manifest {
		output.Files = append(output.Files, entry.Path)
	}

	return nil, output, nil
}
