package services

import (
	"strings"

	"deal-checker/models"
)

const genericArgumentIcon = "➤"

var argumentIcons = []struct {
	keyword string
	icon    string
}{
	{"Depreciation", "📉"},
	{"Equipment", "🛠"},
	{"Market", "📊"},
}

var argumentMarkers = []string{"Depreciation:", "Equipment:", "Market:"}

// TagArguments assigns a display glyph to every argument and strips the
// category markers from its text. Input order is preserved.
func TagArguments(args []string) []models.TaggedArgument {
	out := make([]models.TaggedArgument, 0, len(args))
	for _, arg := range args {
		icon := genericArgumentIcon
		for _, c := range argumentIcons {
			if strings.Contains(arg, c.keyword) {
				icon = c.icon
				break
			}
		}

		text := arg
		for _, marker := range argumentMarkers {
			text = strings.Replace(text, marker, "", 1)
		}
		out = append(out, models.TaggedArgument{Icon: icon, Text: text})
	}
	return out
}
