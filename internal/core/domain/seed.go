package domain

import "time"

// SeedProperties returns the default catalogue used when the persisted
// collection slot is empty or unreadable. The ids are fixed so the catalogue
// survives a reseed without breaking shared links.
func SeedProperties() []Property {
	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	chf := func(amount int64, display string) Price {
		return Price{Amount: amount, Currency: "CHF", Display: display}
	}
	onRequest := Price{Currency: "CHF", Display: "Prix sur demande"}

	return []Property{
		{
			ID:           "1",
			Title:        "Appartement de standing - Champel",
			Description:  "Spacieux appartement traversant au dernier étage, vue dégagée sur le parc Bertrand.",
			City:         "Genève",
			Neighborhood: "Champel",
			Type:         TypeApartment,
			Rooms:        4.5,
			Surface:      120,
			Status:       StatusAvailable,
			ListingType:  ListingSale,
			Price:        chf(1_850_000, "CHF 1'850'000.-"),
			Images:       []string{"champel-01.jpg", "champel-02.jpg"},
			Features:     []string{"balcon", "cave", "ascenseur"},
			Contact:      &ContactInfo{Name: "C. Morel", Phone: "+41 22 700 11 22", Email: "cm@offmarket.example"},
			CreatedAt:    base,
			UpdatedAt:    base,
		},
		{
			ID:           "2",
			Title:        "Villa individuelle - Cologny",
			Description:  "Villa familiale avec jardin arboré et piscine, à deux pas du lac.",
			City:         "Cologny",
			Neighborhood: "Ruth",
			Type:         TypeVilla,
			Rooms:        8,
			Surface:      250,
			Status:       StatusAvailable,
			ListingType:  ListingSale,
			Price:        chf(4_500_000, "CHF 4'500'000.-"),
			Images:       []string{"cologny-01.jpg", "cologny-02.jpg", "cologny-03.jpg"},
			Features:     []string{"piscine", "jardin", "garage double"},
			Contact:      &ContactInfo{Name: "C. Morel", Phone: "+41 22 700 11 22", Email: "cm@offmarket.example"},
			CreatedAt:    base.Add(24 * time.Hour),
			UpdatedAt:    base.Add(24 * time.Hour),
		},
		{
			ID:           "3",
			Title:        "Loft moderne - Eaux-Vives",
			Description:  "Loft lumineux dans une ancienne manufacture réhabilitée, hauteur sous plafond 4m.",
			City:         "Genève",
			Neighborhood: "Eaux-Vives",
			Type:         TypeLoft,
			Rooms:        3.5,
			Surface:      180,
			Status:       StatusAvailable,
			ListingType:  ListingRent,
			Price:        chf(5_800, "CHF 5'800.-/mois"),
			Images:       []string{"eauxvives-01.jpg"},
			Features:     []string{"cheminée", "parking"},
			Contact:      &ContactInfo{Name: "L. Perret", Phone: "+41 22 700 33 44", Email: "lp@offmarket.example"},
			CreatedAt:    base.Add(48 * time.Hour),
			UpdatedAt:    base.Add(48 * time.Hour),
		},
		{
			ID:           "4",
			Title:        "Penthouse exceptionnel - Florissant",
			Description:  "Attique avec terrasse panoramique de 90m², prestations haut de gamme.",
			City:         "Genève",
			Neighborhood: "Florissant",
			Type:         TypePenthouse,
			Rooms:        6.5,
			Surface:      300,
			Status:       StatusAvailable,
			ListingType:  ListingSale,
			Price:        onRequest,
			Images:       []string{"florissant-01.jpg", "florissant-02.jpg"},
			VideoURL:     "https://media.offmarket.example/florissant.mp4",
			Features:     []string{"terrasse", "vue lac", "ascenseur privatif"},
			Contact:      &ContactInfo{Name: "L. Perret", Phone: "+41 22 700 33 44", Email: "lp@offmarket.example"},
			CreatedAt:    base.Add(72 * time.Hour),
			UpdatedAt:    base.Add(72 * time.Hour),
		},
		{
			ID:           "5",
			Title:        "Château historique - Vandœuvres",
			Description:  "Demeure du XVIIIe siècle entièrement restaurée, parc de deux hectares.",
			City:         "Vandœuvres",
			Neighborhood: "Crête",
			Type:         TypeCastle,
			Rooms:        12,
			Surface:      800,
			Status:       StatusSold,
			ListingType:  ListingSale,
			Price:        onRequest,
			Images:       []string{"vandoeuvres-01.jpg"},
			Features:     []string{"parc", "dépendances", "cave voûtée"},
			Contact:      &ContactInfo{Name: "C. Morel", Phone: "+41 22 700 11 22", Email: "cm@offmarket.example"},
			CreatedAt:    base.Add(96 * time.Hour),
			UpdatedAt:    base.Add(96 * time.Hour),
		},
		{
			ID:           "6",
			Title:        "Duplex contemporain - Carouge",
			Description:  "Duplex en attique au cœur du vieux Carouge, finitions contemporaines.",
			City:         "Carouge",
			Neighborhood: "Vieux-Carouge",
			Type:         TypeDuplex,
			Rooms:        5.5,
			Surface:      165,
			Status:       StatusRented,
			ListingType:  ListingRent,
			Price:        chf(4_200, "CHF 4'200.-/mois"),
			Images:       []string{"carouge-01.jpg", "carouge-02.jpg"},
			Features:     []string{"mezzanine", "cave"},
			Contact:      &ContactInfo{Name: "L. Perret", Phone: "+41 22 700 33 44", Email: "lp@offmarket.example"},
			CreatedAt:    base.Add(120 * time.Hour),
			UpdatedAt:    base.Add(120 * time.Hour),
		},
	}
}
