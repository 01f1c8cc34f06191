package host

import "strconv"

// DataView is the tabular result handed to a visual on every update. A
// slicer-shaped view carries exactly one category column and one value
// column; Categorical is nil while the report author is still binding
// fields.
type DataView struct {
	Categorical *CategoricalView
}

// CategoricalView pairs a category column with its per-category measure.
type CategoricalView struct {
	Category *CategoryColumn
	Values   *ValueColumn
}

// CategoryColumn holds the dimension being sliced. QueryName identifies the
// column to the selection machinery; Values are the category names in query
// order.
type CategoryColumn struct {
	QueryName   string
	DisplayName string
	Values      []string
}

// ValueColumn holds the aggregated measure per category row. Entries may be
// float64, string, or nil; nil models a blank aggregate (no underlying
// data under the current filter).
type ValueColumn struct {
	QueryName   string
	DisplayName string
	Values      []any
}

// Viewport is the drawable area granted to a visual, in cells.
type Viewport struct {
	Width  int
	Height int
}

// UpdateOptions is the payload of one visual update cycle.
type UpdateOptions struct {
	DataView DataView
	Viewport Viewport
	Objects  ObjectMap
}

// FormatValue coerces a measure value to its display string. The second
// return is false for blank values (nil), which visuals must drop. An empty
// string is a valid, renderable value distinct from blank.
func FormatValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}
