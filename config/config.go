package config

import (
	"sort"
	"strconv"

	"go.yaml.in/yaml/v4"
	"golang.org/x/mod/semver"

	"github.com/oasgen/oasgen/ir"
	"github.com/oasgen/oasgen/naming"
	"github.com/oasgen/oasgen/oaserrors"
	"github.com/oasgen/oasgen/schema"
)

// NameMapping holds the user-supplied name overrides consumed by the
// allocator (C) and the schema normalizer (D).
type NameMapping struct {
	// StructMapping overrides a component schema pointer's derived
	// name, e.g. "/components/schemas/Pet" -> "Animal".
	StructMapping map[string]string `yaml:"struct_mapping"`
	// PropertyMapping overrides a field or parameter pointer's derived
	// name.
	PropertyMapping map[string]string `yaml:"property_mapping"`
	// StatusCodeMapping names the sum variant for a response status,
	// e.g. "404" -> "NotFound". Statuses with no entry fall back to
	// the allocator's default derivation.
	StatusCodeMapping map[string]string `yaml:"status_code_mapping"`
	// ModuleMapping assigns a schema pointer to a module path, for
	// emitters that nest generated types by module.
	ModuleMapping map[string]string `yaml:"module_mapping"`
}

// Ignore holds the paths and components excluded from the generated
// output.
type Ignore struct {
	// Paths lists path templates (e.g. "/pets/{id}") whose operations
	// are dropped before the operation synthesizer runs.
	Paths []string `yaml:"paths"`
	// Components lists component schema names dropped from the type
	// table; references to them resolve to Opaque("()").
	Components []string `yaml:"components"`
}

// ProjectMetadata is passed through to the renderer for manifest
// files; it is not interpreted by the generator itself.
type ProjectMetadata struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Config is the decoded configuration document.
type Config struct {
	NameMapping     NameMapping     `yaml:"name_mapping"`
	Ignore          Ignore          `yaml:"ignore"`
	ProjectMetadata ProjectMetadata `yaml:"project_metadata"`
}

var topLevelKeys = map[string]bool{
	"name_mapping":     true,
	"ignore":           true,
	"project_metadata": true,
}

var nameMappingKeys = map[string]bool{
	"struct_mapping":      true,
	"property_mapping":    true,
	"status_code_mapping": true,
	"module_mapping":      true,
}

var ignoreKeys = map[string]bool{
	"paths":      true,
	"components": true,
}

var projectMetadataKeys = map[string]bool{
	"name":    true,
	"version": true,
}

// Decode parses a configuration document from YAML or JSON bytes.
// Unknown keys at the top level or within a known section are
// rejected with an oaserrors.ConfigError naming the offending key. An
// empty document decodes to a zero-value Config.
func Decode(data []byte) (*Config, error) {
	if len(data) == 0 {
		return &Config{}, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &oaserrors.ConfigError{Message: "invalid configuration document", Cause: err}
	}
	if err := checkKnownKeys("", raw, topLevelKeys); err != nil {
		return nil, err
	}
	if section, ok := raw["name_mapping"].(map[string]any); ok {
		if err := checkKnownKeys("name_mapping", section, nameMappingKeys); err != nil {
			return nil, err
		}
	}
	if section, ok := raw["ignore"].(map[string]any); ok {
		if err := checkKnownKeys("ignore", section, ignoreKeys); err != nil {
			return nil, err
		}
	}
	if section, ok := raw["project_metadata"].(map[string]any); ok {
		if err := checkKnownKeys("project_metadata", section, projectMetadataKeys); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &oaserrors.ConfigError{Message: "failed to decode configuration", Cause: err}
	}

	if cfg.ProjectMetadata.Version != "" && !semver.IsValid(canonicalSemver(cfg.ProjectMetadata.Version)) {
		return nil, &oaserrors.ConfigError{
			Option:  "project_metadata.version",
			Value:   cfg.ProjectMetadata.Version,
			Message: "not a valid semantic version",
		}
	}

	return &cfg, nil
}

// canonicalSemver prefixes a bare "1.2.3" with "v" so semver.IsValid,
// which requires the "v" prefix, accepts the common unprefixed form
// users write in configuration documents.
func canonicalSemver(v string) string {
	if len(v) > 0 && v[0] == 'v' {
		return v
	}
	return "v" + v
}

func checkKnownKeys(section string, m map[string]any, known map[string]bool) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !known[k] {
			option := k
			if section != "" {
				option = section + "." + k
			}
			return &oaserrors.ConfigError{Option: option, Message: "unknown configuration key"}
		}
	}
	return nil
}

// IgnoresPath reports whether pathTemplate is excluded by
// ignore.paths. Suitable as the ignore predicate passed to
// synth.Synthesizer.SynthesizeOperations.
func (c *Config) IgnoresPath(pathTemplate string) bool {
	if c == nil {
		return false
	}
	for _, p := range c.Ignore.Paths {
		if p == pathTemplate {
			return true
		}
	}
	return false
}

// ApplyIgnoredComponents pre-registers every ignore.components entry
// as an Opaque("()") type on norm, before normalization runs. Any
// $ref to one of these components — including its own declaration —
// then resolves to the pre-registered type instead of being
// classified or failing as a missing reference.
func (c *Config) ApplyIgnoredComponents(norm *schema.Normalizer) {
	if c == nil {
		return
	}
	for _, name := range c.Ignore.Components {
		norm.RegisterOpaque("/components/schemas/"+name, "()")
	}
}

// Deriver builds a naming.Deriver from the struct_mapping and
// property_mapping overrides, for Components C/D to consume.
func (c *Config) Deriver() *naming.Deriver {
	if c == nil {
		return &naming.Deriver{}
	}
	return &naming.Deriver{
		StructMapping:   c.NameMapping.StructMapping,
		PropertyMapping: c.NameMapping.PropertyMapping,
	}
}

// Metadata returns the configured project_metadata, the zero value if
// c is nil or no project_metadata section was decoded.
func (c *Config) Metadata() ProjectMetadata {
	if c == nil {
		return ProjectMetadata{}
	}
	return c.ProjectMetadata
}

// StatusVariantName returns the configured sum-variant name for a
// response status string, if status_code_mapping names one.
func (c *Config) StatusVariantName(status string) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.NameMapping.StatusCodeMapping[status]
	return name, ok
}

// StatusVariantNameOrDefault returns the configured status_code_mapping
// name for status if one is set, falling back to a derived
// "Status<code>" (or "Default" for ir.StatusDefault) variant name
// otherwise. Safe to call on a nil Config.
func (c *Config) StatusVariantNameOrDefault(status int) string {
	key := "default"
	if status != ir.StatusDefault {
		key = strconv.Itoa(status)
	}
	if name, ok := c.StatusVariantName(key); ok {
		return name
	}
	if status == ir.StatusDefault {
		return "Default"
	}
	return "Status" + key
}

// ModulePath returns the configured module path for a schema pointer,
// if module_mapping names one.
func (c *Config) ModulePath(pointer string) (string, bool) {
	if c == nil {
		return "", false
	}
	path, ok := c.NameMapping.ModuleMapping[pointer]
	return path, ok
}
