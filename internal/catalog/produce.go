package catalog

// Produce returns the entries a fresh catalog is seeded with
func Produce() []Entry {
	return []Entry{
		{Name: "Apple", Description: "**Apple** _Malus domestica_"},
		{Name: "Apricot", Description: "**Apricot** _Prunus armeniaca_"},
		{Name: "Artichoke", Description: "**Artichoke** _Cynara cardunculus_"},
		{Name: "Asparagus", Description: "**Asparagus** _Asparagus officinalis_"},
		{Name: "Avocado", Description: "**Avocado** _Persea americana_"},
		{Name: "Banana", Description: "**Banana** _Musa acuminata_"},
		{Name: "Beetroot", Description: "**Beetroot** _Beta vulgaris_"},
		{Name: "Blackberry", Description: "**Blackberry** _Rubus fruticosus_"},
		{Name: "Blueberry", Description: "**Blueberry** _Vaccinium corymbosum_"},
		{Name: "Broccoli", Description: "**Broccoli** _Brassica oleracea_"},
		{Name: "Cabbage", Description: "**Cabbage** _Brassica oleracea_"},
		{Name: "Carrot", Description: "**Carrot** _Daucus carota_"},
		{Name: "Cherry", Description: "**Cherry** _Prunus avium_"},
		{Name: "Coconut", Description: "**Coconut** _Cocos nucifera_"},
		{Name: "Cranberry", Description: "**Cranberry** _Vaccinium macrocarpon_"},
		{Name: "Cucumber", Description: "**Cucumber** _Cucumis sativus_"},
		{Name: "Date", Description: "**Date** _Phoenix dactylifera_"},
		{Name: "Eggplant", Description: "**Eggplant** _Solanum melongena_"},
		{Name: "Fig", Description: "**Fig** _Ficus carica_"},
		{Name: "Garlic", Description: "**Garlic** _Allium sativum_"},
		{Name: "Grape", Description: "**Grape** _Vitis vinifera_"},
		{Name: "Grapefruit", Description: "**Grapefruit** _Citrus × paradisi_"},
		{Name: "Guava", Description: "**Guava** _Psidium guajava_"},
		{Name: "Kale", Description: "**Kale** _Brassica oleracea_"},
		{Name: "Kiwi", Description: "**Kiwi** _Actinidia deliciosa_"},
		{Name: "Leek", Description: "**Leek** _Allium ampeloprasum_"},
		{Name: "Lemon", Description: "**Lemon** _Citrus limon_"},
		{Name: "Lettuce", Description: "**Lettuce** _Lactuca sativa_"},
		{Name: "Lime", Description: "**Lime** _Citrus aurantiifolia_"},
		{Name: "Lychee", Description: "**Lychee** _Litchi chinensis_"},
		{Name: "Mango", Description: "**Mango** _Mangifera indica_"},
		{Name: "Melon", Description: "**Melon** _Cucumis melo_"},
		{Name: "Mushroom", Description: "**Mushroom** _Agaricus bisporus_"},
		{Name: "Nectarine", Description: "**Nectarine** _Prunus persica_"},
		{Name: "Onion", Description: "**Onion** _Allium cepa_"},
		{Name: "Orange", Description: "**Orange** _Citrus × sinensis_"},
		{Name: "Papaya", Description: "**Papaya** _Carica papaya_"},
		{Name: "Peach", Description: "**Peach** _Prunus persica_"},
		{Name: "Pear", Description: "**Pear** _Pyrus communis_"},
		{Name: "Pepper", Description: "**Pepper** _Capsicum annuum_"},
		{Name: "Pineapple", Description: "**Pineapple** _Ananas comosus_"},
		{Name: "Plum", Description: "**Plum** _Prunus domestica_"},
		{Name: "Pomegranate", Description: "**Pomegranate** _Punica granatum_"},
		{Name: "Potato", Description: "**Potato** _Solanum tuberosum_"},
		{Name: "Pumpkin", Description: "**Pumpkin** _Cucurbita pepo_"},
		{Name: "Radish", Description: "**Radish** _Raphanus sativus_"},
		{Name: "Raspberry", Description: "**Raspberry** _Rubus idaeus_"},
		{Name: "Spinach", Description: "**Spinach** _Spinacia oleracea_"},
		{Name: "Strawberry", Description: "**Strawberry** _Fragaria × ananassa_"},
		{Name: "Tomato", Description: "**Tomato** _Solanum lycopersicum_"},
		{Name: "Watermelon", Description: "**Watermelon** _Citrullus lanatus_"},
		{Name: "Zucchini", Description: "**Zucchini** _Cucurbita pepo_"},
	}
}
