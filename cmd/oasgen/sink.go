package main

import "github.com/oasgen/oasgen/internal/filesink"

// ioFailureError is the CLI-local alias for filesink's shared I/O error
// type, distinguishing OS-level write failures from the pipeline's own
// typed errors for exitCodeFor's classification.
type ioFailureError = filesink.IOFailureError

// diskSink is the render.FileSink this CLI hands to render.Driver.
type diskSink = filesink.Disk

func newDiskSink(baseDir string) *diskSink {
	return filesink.NewDisk(baseDir)
}
