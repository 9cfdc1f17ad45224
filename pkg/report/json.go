package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/iancoleman/orderedmap"
)

// WriteJSON writes the categorized records as JSON, preserving the report's
// fixed category emission order.
//
// It performs the following operations:
//   - Step 1: Groups the categories by kind exactly as Build does
//   - Step 2: Fills an ordered map keyed by category tag, walking the fixed
//     emission order so consumers see categories in report order
//   - Step 3: Encodes with two-space indentation and HTML escaping disabled
//
// Empty categories are omitted, and manual-selection mode omits the
// new-dependency categories, mirroring the text report.
//
// Parameters:
//   - w: Destination writer
//   - categories: The categorized update records, any order
//   - manualSelection: Whether new-dependency categories are omitted
//
// Returns:
//   - error: Any encoding or write error
func WriteJSON(w io.Writer, categories []Category, manualSelection bool) error {
	grouped := make(map[CategoryKind][]Category)
	for _, category := range categories {
		grouped[category.Kind] = append(grouped[category.Kind], category)
	}

	data := orderedmap.New()
	for _, kind := range emissionOrder {
		meta := kindMetas[kind]
		if manualSelection && meta.newDep {
			continue
		}

		var records []any
		for _, category := range grouped[kind] {
			for _, record := range category.Records {
				records = append(records, record)
			}
		}
		if len(records) == 0 {
			continue
		}
		data.Set(meta.tag, records)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}
