package main

import (
	"github.com/oasgen/oasgen/internal/goengine"
	"github.com/oasgen/oasgen/ir"
)

// newGoEngine returns the render.TemplateEngine this CLI drives. The
// engine itself lives in internal/goengine so internal/mcpserver's
// generate tool can share it.
func newGoEngine(tree *ir.IR) *goengine.Engine {
	return goengine.New(tree)
}
