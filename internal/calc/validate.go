package calc

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors collects line-item validation failures. General holds
// errors about the collection as a whole; Fields maps an item's index to
// the messages for that item. A nil *ValidationErrors means the input
// was valid.
type ValidationErrors struct {
	General []string
	Fields  map[int][]string
}

func (e *ValidationErrors) Error() string {
	if len(e.General) > 0 {
		return strings.Join(e.General, "; ")
	}

	indexes := make([]int, 0, len(e.Fields))
	for i := range e.Fields {
		indexes = append(indexes, i)
	}

	sort.Ints(indexes)

	parts := make([]string, 0, len(indexes))
	for _, i := range indexes {
		parts = append(parts, fmt.Sprintf("item %d: %s", i, strings.Join(e.Fields[i], ", ")))
	}

	return strings.Join(parts, "; ")
}

func (e *ValidationErrors) add(index int, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[int][]string)
	}

	e.Fields[index] = append(e.Fields[index], msg)
}

// ValidateItems checks a full line-item set before it is saved.
// An empty set is reported as a single collection-level error without
// per-item entries. Per-item rules: name and category are required
// (non-empty after trim) and the amount must not be negative; zero is valid.
func ValidateItems(items []Item) *ValidationErrors {
	if len(items) == 0 {
		return &ValidationErrors{General: []string{"at least one line item is required"}}
	}

	errs := &ValidationErrors{}

	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			errs.add(i, "item name is required")
		}

		if strings.TrimSpace(item.Category) == "" {
			errs.add(i, "item category is required")
		}

		if item.Amount.IsNegative() {
			errs.add(i, "amount must not be negative")
		}
	}

	if len(errs.Fields) == 0 {
		return nil
	}

	return errs
}
