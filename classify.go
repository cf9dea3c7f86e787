package approx

// Status classifies a single item from a CheckUniqueness pass.
type Status string

// The three possible classifications. Their string values double as the
// human-readable rendering.
const (
	StatusUnique      Status = "unique"
	StatusAlreadyUsed Status = "already used"
	StatusInvalid     Status = "invalid input"
)

// Classification pairs an input item with its status.
type Classification struct {
	Item   string
	Status Status
}

// CheckUniqueness classifies each item against the filter, in input order.
// An empty item is classified StatusInvalid and leaves the filter untouched;
// processing continues with the rest of the batch. An item the filter
// already reports present is StatusAlreadyUsed. Otherwise the item is
// StatusUnique and is immediately added to the filter, so a later duplicate
// within the same batch is caught as StatusAlreadyUsed.
//
// This makes classification order-sensitive on purpose: the first occurrence
// of a value in a batch is unique, subsequent occurrences are not. The
// result preserves input order, with duplicate inputs reported as separate
// entries. The filter is mutated in place; the classifier keeps no state of
// its own.
func CheckUniqueness(filter *Filter, items []string) []Classification {
	results := make([]Classification, 0, len(items))

	for _, item := range items {
		seen, err := filter.Contains(item)
		if err != nil {
			results = append(results, Classification{Item: item, Status: StatusInvalid})
			continue
		}

		if seen {
			results = append(results, Classification{Item: item, Status: StatusAlreadyUsed})
			continue
		}

		_ = filter.Add(item) // cannot fail: Contains accepted the item
		results = append(results, Classification{Item: item, Status: StatusUnique})
	}

	return results
}
