package domain

// Well-known category ids.
const (
	CategoryWater         = "water-beverages"
	CategoryFood          = "food"
	CategoryCookingHeat   = "cooking-heat"
	CategoryLightPower    = "light-power"
	CategoryCommunication = "communication-info"
	CategoryMedical       = "medical-health"
	CategoryHygiene       = "hygiene-sanitation"
	CategoryTools         = "tools-supplies"
	CategoryCashDocuments = "cash-documents"
	CategoryPets          = "pets"
)

type Category struct {
	ID   string
	Name string
}

// StandardCategories lists the built-in categories in display order.
var StandardCategories = []Category{
	{ID: CategoryWater, Name: "Water & Beverages"},
	{ID: CategoryFood, Name: "Food"},
	{ID: CategoryCookingHeat, Name: "Cooking & Heat"},
	{ID: CategoryLightPower, Name: "Light & Power"},
	{ID: CategoryCommunication, Name: "Communication & Info"},
	{ID: CategoryMedical, Name: "Medical & Health"},
	{ID: CategoryHygiene, Name: "Hygiene & Sanitation"},
	{ID: CategoryTools, Name: "Tools & Supplies"},
	{ID: CategoryCashDocuments, Name: "Cash & Documents"},
	{ID: CategoryPets, Name: "Pets"},
}

// ActiveCategories returns the standard categories followed by any other
// category id referenced by the catalog or the inventory, in first-seen order.
func ActiveCategories(catalog []RecommendedItem, items []InventoryItem) []Category {
	seen := make(map[string]bool, len(StandardCategories))
	out := make([]Category, 0, len(StandardCategories))
	for _, c := range StandardCategories {
		seen[c.ID] = true
		out = append(out, c)
	}
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, Category{ID: id, Name: id})
	}
	for _, r := range catalog {
		add(r.CategoryID)
	}
	for _, it := range items {
		add(it.CategoryID)
	}
	return out
}
