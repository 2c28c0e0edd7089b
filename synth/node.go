package synth

import "github.com/oasgen/oasgen/internal/nodeutil"

func asObject(v any) map[string]any { return nodeutil.AsObject(v) }

func getString(obj map[string]any, key string) string { return nodeutil.GetString(obj, key) }

func getBool(obj map[string]any, key string) bool { return nodeutil.GetBool(obj, key) }

func pointerChild(parent, segment string) string { return nodeutil.PointerChild(parent, segment) }
