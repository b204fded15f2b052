package display

import "sort"

// Indicator describe cómo se pinta un valor enumerado (status, fase, etc.).
type Indicator struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color Color  `json:"color"`
}

type Color string

const (
	ColorPrimary Color = "#2E7D32"
	ColorSuccess Color = "#43A047"
	ColorWarning Color = "#F9A825"
	ColorDanger  Color = "#C62828"
	ColorInfo    Color = "#1565C0"
	ColorNeutral Color = "#757575"
)

type IconSize string

const (
	IconSizeSM IconSize = "sm"
	IconSizeMD IconSize = "md"
	IconSizeLG IconSize = "lg"
	IconSizeXL IconSize = "xl"
)

// IconSizes en px.
var IconSizes = map[IconSize]int{
	IconSizeSM: 16,
	IconSizeMD: 20,
	IconSizeLG: 24,
	IconSizeXL: 32,
}

// Unknown se usa cuando un valor no está en la tabla.
var Unknown = Indicator{Label: "Desconhecido", Icon: "help-circle", Color: ColorNeutral}

// Lookup devuelve el indicador de v o Unknown.
func Lookup[K ~string](table map[K]Indicator, v K) Indicator {
	if ind, ok := table[v]; ok {
		return ind
	}
	return Unknown
}

// Entry es una fila serializable de una tabla de lookup.
type Entry struct {
	Value string `json:"value"`
	Indicator
}

// Entries aplana la tabla ordenada por valor (salida estable para la UI).
func Entries[K ~string](table map[K]Indicator) []Entry {
	out := make([]Entry, 0, len(table))
	for k, ind := range table {
		out = append(out, Entry{Value: string(k), Indicator: ind})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// TableRow es una fila plana para tablas de listado.
type TableRow struct {
	ID    string            `json:"id"`
	Cells map[string]string `json:"cells"`
}
