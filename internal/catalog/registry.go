package catalog

// CategoryInfo is one tile of the Overview collection grid.
type CategoryInfo struct {
	ID    Category
	Label string
	Glyph string
}

var categoryRegistry = []CategoryInfo{
	{ID: CategoryTransport, Label: "Commute & Transit", Glyph: "⇆"},
	{ID: CategoryDailyLife, Label: "Urban Pulse", Glyph: "◉"},
	{ID: CategoryCulture, Label: "Heritage & Opera", Glyph: "♪"},
	{ID: CategoryRitual, Label: "Ceremonial", Glyph: "⛩"},
	{ID: CategoryNature, Label: "Ecology", Glyph: "≈"},
	{ID: CategoryCampus, Label: "Academic", Glyph: "✎"},
	{ID: CategoryIndustrial, Label: "Industrial Edge", Glyph: "⚙"},
	{ID: CategoryVoice, Label: "Dialect & Vocal", Glyph: "☊"},
}

// Categories returns the registry in display order.
func Categories() []CategoryInfo {
	return append([]CategoryInfo(nil), categoryRegistry...)
}

// LookupCategory returns the registry entry for id.
func LookupCategory(id Category) (CategoryInfo, bool) {
	for _, info := range categoryRegistry {
		if info.ID == id {
			return info, true
		}
	}
	return CategoryInfo{}, false
}
