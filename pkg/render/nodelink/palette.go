package nodelink

// DefaultColor fills nodes whose category has no palette entry.
const DefaultColor = "#1976d2"

// palette maps the catalog categories to fill colours.
var palette = map[string]string{
	"Elettronica": "#2196F3",
	"Audio":       "#FF9800",
	"Accessori":   "#4CAF50",
	"Componenti":  "#9C27B0",
	"Rete":        "#F44336",
	"Periferiche": "#00BCD4",
	"Arredamento": "#795548",
	"Smart Home":  "#8BC34A",
	"Storage":     "#607D8B",
}

// CategoryColor returns the fill colour for a category.
func CategoryColor(category string) string {
	if c, ok := palette[category]; ok {
		return c
	}
	return DefaultColor
}
