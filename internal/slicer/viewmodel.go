package slicer

import (
	"strconv"

	"github.com/tmarchant/vslice/internal/host"
)

// ObjectGeneral is the slicer's single object group in the host property
// system.
const ObjectGeneral = "general"

// Rendering degrades somewhere past ~10,000 distinct values; the ceiling is
// documented, not enforced.
const defaultTextSize = 8

// Settings are the slicer's resolved object properties.
type Settings struct {
	TextSize         float64
	DefaultSelection string
}

func defaultSettings() Settings {
	return Settings{TextSize: defaultTextSize}
}

// ViewModel is the output of one build pass: the measure-value grouping and
// the settings in effect.
type ViewModel struct {
	Grouping *Grouping
	Settings Settings
}

// BuildViewModel collapses a data view to its distinct measure values. It is
// a pure pass over the inputs: no state, no ordering beyond first occurrence.
//
// A view with no categorical side, category column, or value column yields an
// empty grouping and default settings; that is the normal state while fields
// are still being bound, not an error. Rows whose measure value is blank are
// dropped entirely. The empty string is a valid key: only a truly absent
// value drops the row.
func BuildViewModel(dv host.DataView, objects host.ObjectMap, ids host.IdentityBuilder) ViewModel {
	settings := resolveSettings(objects)

	cat := dv.Categorical
	if cat == nil || cat.Category == nil || cat.Values == nil {
		return ViewModel{Grouping: NewGrouping(), Settings: settings}
	}

	grouping := NewGrouping()
	n := len(cat.Category.Values)
	if len(cat.Values.Values) > n {
		n = len(cat.Values.Values)
	}
	for i := 0; i < n; i++ {
		// The two columns can disagree on length; indices past either bound
		// are skipped rather than erroring.
		if i >= len(cat.Category.Values) || i >= len(cat.Values.Values) {
			continue
		}
		key, ok := host.FormatValue(cat.Values.Values[i])
		if !ok {
			continue
		}
		grouping.Add(key, ids.IdentityFor(cat.Category, i))
	}
	return ViewModel{Grouping: grouping, Settings: settings}
}

// resolveSettings reads the slicer's object group out of the host property
// bags. Each missing or malformed property falls back to its default
// independently; ranges are not validated here.
func resolveSettings(objects host.ObjectMap) Settings {
	s := defaultSettings()
	props, ok := objects[ObjectGeneral]
	if !ok {
		return s
	}
	if v, ok := props["textSize"]; ok {
		if size, ok := toNumber(v); ok {
			s.TextSize = size
		}
	}
	if v, ok := props["defaultSelectionValue"]; ok {
		if str, ok := v.(string); ok {
			s.DefaultSelection = str
		}
	}
	return s
}

func toNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
