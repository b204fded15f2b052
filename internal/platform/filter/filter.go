package filter

// BySelectedProperty filtra items por la propiedad (fazenda) seleccionada.
//
//   - items nil => slice vacío (no nil)
//   - sin propiedad seleccionada o "todas" => items tal cual
//   - si no => items cuyo propertyID(item) == selectedPropertyID, en el mismo orden
//
// No modifica items.
func BySelectedProperty[T any](items []T, selectedPropertyID string, isAllSelected bool, propertyID func(T) string) []T {
	if items == nil {
		return []T{}
	}
	if selectedPropertyID == "" || isAllSelected {
		return items
	}
	if propertyID == nil {
		return []T{}
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if propertyID(it) == selectedPropertyID {
			out = append(out, it)
		}
	}
	return out
}
