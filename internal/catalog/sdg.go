package catalog

import "fmt"

var sdgGoals = [MaxSDG]SDGGoal{
	{ID: 1, Name: "No Poverty"},
	{ID: 2, Name: "Zero Hunger"},
	{ID: 3, Name: "Good Health & Well-Being"},
	{ID: 4, Name: "Quality Education"},
	{ID: 5, Name: "Gender Equality"},
	{ID: 6, Name: "Clean Water & Sanitation"},
	{ID: 7, Name: "Affordable & Clean Energy"},
	{ID: 8, Name: "Decent Work & Economic Growth"},
	{ID: 9, Name: "Industry, Innovation & Infrastructure"},
	{ID: 10, Name: "Reduced Inequalities"},
	{ID: 11, Name: "Sustainable Cities & Communities"},
	{ID: 12, Name: "Responsible Consumption & Production"},
	{ID: 13, Name: "Climate Action"},
	{ID: 14, Name: "Life Below Water"},
	{ID: 15, Name: "Life on Land"},
	{ID: 16, Name: "Peace, Justice & Strong Institutions"},
	{ID: 17, Name: "Partnerships for the Goals"},
}

// SDGs returns the 17 UN Sustainable Development Goals in id order.
func SDGs() []SDGGoal {
	out := make([]SDGGoal, len(sdgGoals))
	copy(out, sdgGoals[:])
	return out
}

func ValidSDG(id int) bool {
	return id >= MinSDG && id <= MaxSDG
}

// SDGName returns the goal name or an empty string for ids outside 1..17.
func SDGName(id int) string {
	if !ValidSDG(id) {
		return ""
	}
	return sdgGoals[id-1].Name
}

// SDGLabel renders the goal the way prompts and reports show it: "SDG 9: Industry, Innovation & Infrastructure".
func SDGLabel(id int) string {
	if !ValidSDG(id) {
		return fmt.Sprintf("SDG %d", id)
	}
	return fmt.Sprintf("SDG %d: %s", id, sdgGoals[id-1].Name)
}

// SDGLabels maps SDGLabel over ids.
func SDGLabels(ids []int) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, SDGLabel(id))
	}
	return labels
}
