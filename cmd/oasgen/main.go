// Command oasgen turns an OpenAPI 3.x document into a statically-typed
// Go client and writes it to disk.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oasgen/oasgen"
	"github.com/oasgen/oasgen/oaserrors"
	"github.com/oasgen/oasgen/render"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Println(oasgen.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitCodeFor(err))
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(2)
	}
}

// generateFlags contains flags for the generate command.
type generateFlags struct {
	out     string
	config  string
	overlay string
	name    string
	version string
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.out, "out", "", "output directory (required)")
	fs.StringVar(&flags.config, "config", "", "configuration file (name mapping, ignore rules, project metadata)")
	fs.StringVar(&flags.overlay, "overlay", "", "OpenAPI Overlay document applied before parsing")
	fs.StringVar(&flags.name, "name", "", "project name, overrides the config's project_metadata.name")
	fs.StringVar(&flags.version, "version", "", "project version, overrides the config's project_metadata.version")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oasgen generate <SPEC> --out <DIR> [flags]\n\n")
		_, _ = fmt.Fprintf(output, "Generate a statically-typed client from an OpenAPI 3.x document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oasgen generate openapi.yaml --out ./out\n")
		_, _ = fmt.Fprintf(output, "  oasgen generate openapi.yaml --out ./out --config oasgen.yaml\n")
		_, _ = fmt.Fprintf(output, "  oasgen generate openapi.yaml --out ./out --overlay overlay.yaml --name petstore\n")
	}

	return fs, flags
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one input spec path")
	}

	if flags.out == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use --out)")
	}

	specPath := fs.Arg(0)

	var opts []oasgen.Option
	if flags.config != "" {
		opts = append(opts, oasgen.WithConfigFile(flags.config))
	}
	if flags.overlay != "" {
		opts = append(opts, oasgen.WithOverlay(flags.overlay))
	}
	if flags.name != "" {
		opts = append(opts, oasgen.WithProjectName(flags.name))
	}
	if flags.version != "" {
		opts = append(opts, oasgen.WithProjectVersion(flags.version))
	}

	p := oasgen.New()
	startTime := time.Now()
	result, err := p.Run(specPath, opts...)
	if err != nil {
		return fmt.Errorf("generating: %w", err)
	}
	loadTime := time.Since(startTime)

	projectName := result.IR.ProjectMetadata.Name
	if projectName == "" {
		projectName = string(result.IR.RootModule)
	}
	outDir := filepath.Join(flags.out, projectName)

	sink := newDiskSink(outDir)
	engine := newGoEngine(result.IR)
	driver := render.NewDriver("go")
	driver.ManifestFilename = "go.mod"

	runResult, err := driver.Run(context.Background(), result.IR, sink, engine)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	fmt.Printf("OpenAPI Client Generator\n")
	fmt.Printf("========================\n\n")
	fmt.Printf("oasgen version: %s\n", oasgen.Version())
	fmt.Printf("Specification: %s\n", specPath)
	fmt.Printf("Module: %s\n", result.IR.RootModule)
	fmt.Printf("Types: %d\n", len(result.IR.Types))
	fmt.Printf("Operations: %d\n", len(result.IR.Operations))
	fmt.Printf("Files written: %d\n", len(runResult.Manifest))
	fmt.Printf("Output: %s\n", outDir)
	fmt.Printf("Load time: %v\n\n", loadTime)

	if n := result.Diagnostics.Len(); n > 0 {
		fmt.Printf("Diagnostics (%d):\n", n)
		for _, issue := range result.Diagnostics.Issues() {
			fmt.Printf("  %s\n", issue.String())
		}
		fmt.Println()
	}

	fmt.Printf("✓ Generation completed successfully!\n")
	return nil
}

// exitCodeFor maps a handleGenerate error to the exit codes oasgen
// documents: 2 usage, 3 input parse/validation, 4 generation, 5 I/O.
func exitCodeFor(err error) int {
	var ioErr *ioFailureError
	if errors.As(err, &ioErr) {
		return 5
	}

	var compErr *oaserrors.CompositionError
	var cycleErr *oaserrors.CycleError
	if errors.As(err, &compErr) || errors.As(err, &cycleErr) {
		return 4
	}

	var parseErr *oaserrors.ParseError
	var schemaErr *oaserrors.SchemaError
	var refErr *oaserrors.ReferenceError
	var cfgErr *oaserrors.ConfigError
	var limitErr *oaserrors.ResourceLimitError
	if errors.As(err, &parseErr) || errors.As(err, &schemaErr) || errors.As(err, &refErr) ||
		errors.As(err, &cfgErr) || errors.As(err, &limitErr) {
		return 3
	}

	return 2
}

func printUsage() {
	fmt.Println(`oasgen - OpenAPI 3.x client generator

Usage:
  oasgen <command> [options]

Commands:
  generate    Generate a statically-typed client from an OpenAPI document
  version     Show version information
  help        Show this help message

Examples:
  oasgen generate openapi.yaml --out ./out
  oasgen generate openapi.yaml --out ./out --config oasgen.yaml --name petstore

Run 'oasgen <command> --help' for more information on a command.`)
}
