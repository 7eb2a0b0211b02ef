package parser

import "testing"

func TestIdentify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "countdown lowercase",
			text: "countdown ponsonby\nmilk $4.50",
			want: StoreCountdown,
		},
		{
			name: "countdown mixed case",
			text: "COUNTDOWN Metro",
			want: StoreCountdown,
		},
		{
			name: "new world",
			text: "New World Thorndon",
			want: StoreNewWorld,
		},
		{
			name: "paknsave compact spelling",
			text: "PAKNSAVE Kilbirnie",
			want: StorePaknSave,
		},
		{
			name: "paknsave spaced spelling",
			text: "pak n save petone",
			want: StorePaknSave,
		},
		{
			name: "four square",
			text: "FOUR SQUARE Raglan",
			want: StoreFourSquare,
		},
		{
			name: "moore wilson",
			text: "Moore Wilson's Fresh Market",
			want: StoreMooreWilsons,
		},
		{
			name: "warehouse",
			text: "The Warehouse Lower Hutt",
			want: StoreWarehouse,
		},
		{
			name: "fresh choice",
			text: "FreshChoice Nelson",
			want: StoreFreshChoice,
		},
		{
			name: "first match wins when two stores appear",
			text: "countdown receipt mentioning new world",
			want: StoreCountdown,
		},
		{
			name: "order beats position in text",
			text: "new world was cheaper than countdown today",
			want: StoreCountdown,
		},
		{
			name: "unknown store",
			text: "Joe's Corner Dairy",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identify(tt.text); got != tt.want {
				t.Errorf("Identify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoreNames(t *testing.T) {
	names := StoreNames()

	if len(names) != len(storeIdentifiers) {
		t.Fatalf("len(StoreNames()) = %d, want %d", len(names), len(storeIdentifiers))
	}
	if names[0] != StoreCountdown {
		t.Errorf("first store = %q, want %q", names[0], StoreCountdown)
	}
}

func TestRegistryOrderMatchesStores(t *testing.T) {
	// Every registry entry must carry a canonical store name so dispatch by
	// name can find it.
	known := make(map[string]bool)
	for _, n := range StoreNames() {
		known[n] = true
	}

	for _, p := range Registry() {
		if !known[p.Store] {
			t.Errorf("registry entry %q has no store identifier", p.Store)
		}
	}
}
