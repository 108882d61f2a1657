package labels

import (
	"sort"
	"strings"

	opts "github.com/goliatone/go-options"
	"github.com/goliatone/go-portfolio/pkg/types"
)

// Layer names the origin of a resolved text value.
type Layer string

const (
	LayerGeneric  Layer = "generic"
	LayerTemplate Layer = "template"
	LayerOverride Layer = "override"
)

// TextSnapshot is the effective copy for one template plus provenance.
type TextSnapshot struct {
	TemplateID types.TemplateID
	Effective  map[string]string
	Traces     []TextTrace
}

// Text returns the resolved value for key.
func (s TextSnapshot) Text(key string) string {
	return s.Effective[key]
}

// TextTrace records which layer supplied a key.
type TextTrace struct {
	Key    string
	Source Layer
	Value  string
}

// Resolve merges the generic, template and override layers for templateID
// into a single snapshot. Blank overrides fall through to the next layer.
func Resolve(overrides map[types.TemplateID]map[string]string, templateID types.TemplateID) (TextSnapshot, error) {
	layers := []struct {
		layer    Layer
		priority int
		label    string
		values   map[string]any
	}{
		{LayerGeneric, opts.ScopePrioritySystem, "Generic Fallback", toAny(genericText)},
		{LayerTemplate, opts.ScopePriorityTenant, "Template Defaults", toAny(templateConfigs[templateID].Defaults)},
		{LayerOverride, opts.ScopePriorityUser, "User Overrides", toAny(overrides[templateID])},
	}

	stackLayers := make([]opts.Layer[map[string]any], 0, len(layers))
	for _, l := range layers {
		scope := opts.NewScope(string(l.layer), l.priority,
			opts.WithScopeLabel(l.label),
			opts.WithScopeMetadata(map[string]any{"template_id": string(templateID)}))
		stackLayers = append(stackLayers, opts.NewLayer(scope, l.values, opts.WithSnapshotID[map[string]any](scope.Name)))
	}
	stack, err := opts.NewStack(stackLayers...)
	if err != nil {
		return TextSnapshot{}, err
	}
	merged, err := stack.Merge()
	if err != nil {
		return TextSnapshot{}, err
	}

	effective := make(map[string]string, len(merged.Value))
	for key, value := range merged.Value {
		if s, ok := value.(string); ok {
			effective[key] = s
		}
	}
	return TextSnapshot{
		TemplateID: templateID,
		Effective:  effective,
		Traces:     buildTraces(effective, layers[1].values, layers[2].values),
	}, nil
}

// MustResolve resolves the snapshot and falls back to per-key lookups when the
// layered merge fails, so renderers always receive copy.
func MustResolve(overrides map[types.TemplateID]map[string]string, templateID types.TemplateID) TextSnapshot {
	snapshot, err := Resolve(overrides, templateID)
	if err == nil {
		return snapshot
	}
	keys := knownKeys(overrides[templateID])
	effective := make(map[string]string, len(keys))
	for _, key := range keys {
		effective[key] = TemplateText(overrides, templateID, key)
	}
	return TextSnapshot{TemplateID: templateID, Effective: effective}
}

func buildTraces(effective map[string]string, template, override map[string]any) []TextTrace {
	keys := make([]string, 0, len(effective))
	for key := range effective {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	traces := make([]TextTrace, 0, len(keys))
	for _, key := range keys {
		source := LayerGeneric
		if _, ok := template[key]; ok {
			source = LayerTemplate
		}
		if _, ok := override[key]; ok {
			source = LayerOverride
		}
		traces = append(traces, TextTrace{Key: key, Source: source, Value: effective[key]})
	}
	return traces
}

// toAny drops blank values so they never shadow a lower layer.
func toAny(values map[string]string) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}

func knownKeys(extra map[string]string) []string {
	set := make(map[string]struct{}, len(genericText)+len(extra))
	for key := range genericText {
		set[key] = struct{}{}
	}
	for key := range extra {
		set[key] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
