package models

// Catalog lists the canonical values the registration and search forms use.
type Catalog struct {
	Subjects    []string `json:"subjects"`
	Levels      []string `json:"levels"`
	Cities      []string `json:"cities"`
	CourseTypes []string `json:"course_types"`
}

var (
	Subjects = []string{
		"Mathématiques",
		"Français",
		"Anglais",
		"Physique-Chimie",
		"Sciences de la Vie et de la Terre",
		"Histoire-Géographie",
		"Philosophie",
		"Économie",
		"Informatique",
		"Arabe",
		"Éducation Civique",
		"Comptabilité",
		"Droit",
		"Gestion",
	}

	EducationLevels = []string{
		"1ère année",
		"2ème année",
		"3ème année",
		"4ème année",
		"5ème année",
		"6ème année",
		"7ème année",
		"8ème année",
		"9ème année",
		"10ème année",
		"11ème année",
		"12ème année / Terminale",
		"Licence 1 (L1)",
		"Licence 2 (L2)",
		"Licence 3 (L3)",
		"Master 1 (M1)",
		"Master 2 (M2)",
	}

	Cities = []string{
		"Conakry",
		"Kindia",
		"Boké",
		"Kankan",
		"Labé",
		"Mamou",
		"Faranah",
		"N'Zérékoré",
		"Siguiri",
		"Kissidougou",
	}
)

// DefaultCatalog returns the static catalog served to clients.
func DefaultCatalog() Catalog {
	return Catalog{
		Subjects:    Subjects,
		Levels:      EducationLevels,
		Cities:      Cities,
		CourseTypes: []string{string(CourseAtHome), string(CourseOnline), string(CourseBoth)},
	}
}
