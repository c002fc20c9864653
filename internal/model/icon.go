package model

// CategoryIcon is the presentation icon shown next to a category.
type CategoryIcon int

// Known icons. IconOther is the default for any category id without a
// dedicated icon, including every user-created category.
const (
	IconOther CategoryIcon = iota
	IconClothing
	IconDocuments
	IconElectronics
	IconToiletries
)

// IconFor maps a category id to its icon.
func IconFor(categoryID string) CategoryIcon {
	switch categoryID {
	case "clothing":
		return IconClothing
	case "documents":
		return IconDocuments
	case "electronics":
		return IconElectronics
	case "toiletries":
		return IconToiletries
	default:
		return IconOther
	}
}

// Glyph returns the terminal symbol for the icon.
func (i CategoryIcon) Glyph() string {
	switch i {
	case IconClothing:
		return "👕"
	case IconDocuments:
		return "📄"
	case IconElectronics:
		return "📱"
	case IconToiletries:
		return "❤"
	default:
		return "📦"
	}
}

// String returns the icon name.
func (i CategoryIcon) String() string {
	switch i {
	case IconClothing:
		return "clothing"
	case IconDocuments:
		return "documents"
	case IconElectronics:
		return "electronics"
	case IconToiletries:
		return "toiletries"
	default:
		return "other"
	}
}
