package category

import "fmt"

// Category classifies an expense. The set is closed: adding a category
// means extending the constants and the metadata table together.
type Category int8

const (
	Food Category = iota
	Transport
	Rent
	Bills
	Other
)

// All lists every category in declaration order. Presentation code relies
// on this order for deterministic tie-breaking when amounts are equal.
func All() []Category {
	return []Category{Food, Transport, Rent, Bills, Other}
}

func (c Category) String() string {
	switch c {
	case Food:
		return "food"
	case Transport:
		return "transport"
	case Rent:
		return "rent"
	case Bills:
		return "bills"
	case Other:
		return "other"
	}
	return "other"
}

// Parse converts a wire identifier into a Category.
func Parse(s string) (Category, error) {
	switch s {
	case "food":
		return Food, nil
	case "transport":
		return Transport, nil
	case "rent":
		return Rent, nil
	case "bills":
		return Bills, nil
	case "other":
		return Other, nil
	}
	return Other, fmt.Errorf("unknown category %q", s)
}

// Info is the static display metadata for a category.
type Info struct {
	ID    Category
	Label string
	Color string
}

var infoTable = [...]Info{
	Food:      {ID: Food, Label: "Food", Color: "#e07a3f"},
	Transport: {ID: Transport, Label: "Transport", Color: "#3f8fe0"},
	Rent:      {ID: Rent, Label: "Rent", Color: "#7a5fd0"},
	Bills:     {ID: Bills, Label: "Bills", Color: "#3fb68a"},
	Other:     {ID: Other, Label: "Other", Color: "#8a8f98"},
}

// InfoFor resolves the metadata for a category. A value outside the closed
// set resolves to the Other entry so a corrupted record cannot break a view.
func InfoFor(c Category) Info {
	if c < Food || c > Other {
		return infoTable[Other]
	}
	return infoTable[c]
}
