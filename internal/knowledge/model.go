package knowledge

// Category groups related hardware components.
type Category string

const (
	CategoryPerformance Category = "Performance"
	CategoryPower       Category = "Power"
	CategoryNetwork     Category = "Network"
	CategoryDisplay     Category = "Display"
	CategoryStorage     Category = "Storage"
	CategoryOther       Category = "Other"
)

// Component is a specific hardware remedy or upgrade recommendation.
// Components are immutable at request time.
type Component struct {
	ID         string   `json:"id"`
	Category   Category `json:"category"`
	Definition string   `json:"definition"`
	WhyUseful  string   `json:"whyUseful"`
	FixingTips []string `json:"fixingTips"`
	Related    []string `json:"related"`
}
