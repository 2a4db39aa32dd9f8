package catalog

// Rarity grades bandanas and ready capdanas.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityRare      Rarity = "RARE"
	RarityLegendary Rarity = "LEGENDARY"
	RarityOneOfOne  Rarity = "1OF1"
)

// rarityOrder fixes the display ordering, rarest last.
var rarityOrder = map[Rarity]int{
	RarityCommon:    0,
	RarityRare:      1,
	RarityLegendary: 2,
	RarityOneOfOne:  3,
}

// Valid reports whether r is a known rarity grade
func (r Rarity) Valid() bool {
	_, ok := rarityOrder[r]
	return ok
}

// SortKey returns the display ordering position, rarest highest
func (r Rarity) SortKey() int {
	return rarityOrder[r]
}
