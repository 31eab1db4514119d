// Package story checks branching story documents produced by the editor.
//
// A document looks like
//
//	{"startSceneId": "scene-1", "scenes": {"scene-1": {"id": "scene-1", "text": "...", "choices": [...]}}}
//
// Validation is structural only; it does not follow nextSceneId links.
// Arrays count as objects wherever an object is expected: their keys are
// the element indexes, so `"scenes": [...]` is checked element by element.
package story

import (
	"fmt"
	"sort"
	"strconv"
)

type Result struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors"`
}

// Validate takes a decoded JSON value (as produced by encoding/json into
// an any) and reports every structural problem it finds.
func Validate(doc any) Result {
	_, root, ok := asObject(doc)
	if !ok {
		return Result{OK: false, Errors: []string{"File is not a JSON object."}}
	}

	errs := []string{}
	if start, ok := root["startSceneId"].(string); !ok || start == "" {
		errs = append(errs, "Missing or invalid startSceneId (must be a string).")
	}

	ids, scenes, ok := asObject(root["scenes"])
	if !ok {
		errs = append(errs, "Missing or invalid scenes object.")
		return Result{OK: false, Errors: errs}
	}

	for _, id := range ids {
		_, scene, ok := asObject(scenes[id])
		if !ok {
			errs = append(errs, fmt.Sprintf("Scene %q is not an object.", id))
			continue
		}
		if sid, _ := scene["id"].(string); sid != id {
			errs = append(errs, fmt.Sprintf("Scene %q must have matching id property.", id))
		}
		if _, ok := scene["text"].(string); !ok {
			errs = append(errs, fmt.Sprintf("Scene %q text must be a string.", id))
		}
		if _, ok := scene["choices"].([]any); !ok {
			errs = append(errs, fmt.Sprintf("Scene %q choices must be an array.", id))
		}
	}

	return Result{OK: len(errs) == 0, Errors: errs}
}

// asObject views a JSON object or array as keyed fields. Object keys come
// back sorted; array keys are the indexes in order.
func asObject(v any) ([]string, map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys, t, true
	case []any:
		keys := make([]string, len(t))
		m := make(map[string]any, len(t))
		for i, e := range t {
			keys[i] = strconv.Itoa(i)
			m[keys[i]] = e
		}
		return keys, m, true
	default:
		return nil, nil, false
	}
}
