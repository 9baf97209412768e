package domain

// Event is one entry of the fixed incident catalog. Catalog entries are
// hard-coded, never persisted, and distinct from event-role accounts even
// though reports reference both through the same eventId field.
type Event struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

var catalog = []Event{
	{
		ID:    "1",
		Name:  "Storm",
		Image: "https://metsul.com/wp-content/uploads/2022/09/temporal2609b-scaled.jpg",
	},
	{
		ID:    "2",
		Name:  "Network Overload",
		Image: "https://agoranovale.com.br/wp-content/uploads/2023/11/energia_eletrica-postes-redes-marcelo_casal-Agencia-brasil-agoranovale.webp",
	},
	{
		ID:    "3",
		Name:  "Fallen Tree",
		Image: "https://www.ambientelegal.com.br/wp-content/uploads/%C3%A1rvores1.jpeg",
	},
}

// Catalog returns the fixed incident catalog in declaration order.
func Catalog() []Event {
	out := make([]Event, len(catalog))
	copy(out, catalog)
	return out
}

// EventByID looks up a catalog entry by id.
func EventByID(id string) (Event, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}
