package pets

import "time"

// Seed es el catálogo inicial que se usa cuando el backend no tiene la key "pets".
func Seed(now time.Time) []Pet {
	mk := func(id, name, species, breed, age, gender, desc, image string) Pet {
		return Pet{
			ID:          id,
			Name:        name,
			Species:     species,
			Breed:       breed,
			Age:         age,
			Gender:      gender,
			Description: desc,
			ImageRef:    assetPrefix + image,
			Status:      StatusAvailable,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return []Pet{
		mk("1", "Smiley", "dog", "Aspin", "2 years", "Male",
			"Very friendly and loves to play fetch. Gets along well with other dogs.", "smiley.png"),
		mk("2", "Owen", "cat", "Puspin", "1.5 years", "Male",
			"Loves cuddles and naps. Already neutered and vaccinated.", "owen.png"),
		mk("3", "Vicky", "dog", "Aspin", "3 years", "Female",
			"Gentle and well-behaved. Great with children and other pets.", "vicky.png"),
		mk("30", "Walter White", "cat", "Puspin", "4 years", "Male",
			"A calm and dignified cat who enjoys quiet environments.", "walter.png"),
	}
}
