package exercisedb

const (
	defaultName      = "Unknown Exercise"
	defaultTarget    = "unknown"
	defaultBodyPart  = "Unknown"
	defaultEquipment = "None"
)

type Exercise struct {
	Name      string `json:"name"`
	Target    string `json:"target"`
	BodyPart  string `json:"bodyPart"`
	Equipment string `json:"equipment"`
	GifURL    string `json:"gifUrl"`
}

// apiExercise is a single record as returned by the exercise db;
// pointers tell absent fields apart from empty ones.
type apiExercise struct {
	Name      *string `json:"name"`
	Target    *string `json:"target"`
	BodyPart  *string `json:"bodyPart"`
	Equipment *string `json:"equipment"`
	GifURL    *string `json:"gifUrl"`
}

func (e apiExercise) toExercise() Exercise {
	return Exercise{
		Name:      valueOr(e.Name, defaultName),
		Target:    valueOr(e.Target, defaultTarget),
		BodyPart:  valueOr(e.BodyPart, defaultBodyPart),
		Equipment: valueOr(e.Equipment, defaultEquipment),
		GifURL:    valueOr(e.GifURL, ""),
	}
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
