package cleaning

// WorkType is one of Remote, Hybrid or Onsite.
type WorkType string

const (
	Remote WorkType = "Remote"
	Hybrid WorkType = "Hybrid"
	Onsite WorkType = "Onsite"
)

// WorkTypeOrder is the category order used for grouping and charts.
var WorkTypeOrder = []string{string(Remote), string(Hybrid), string(Onsite)}

// WorkTypeForFrequency maps a remote-work percentage to its label. Only 100,
// 50 and 0 have a label.
func WorkTypeForFrequency(freq float64) (WorkType, bool) {
	switch freq {
	case 100:
		return Remote, true
	case 50:
		return Hybrid, true
	case 0:
		return Onsite, true
	}
	return "", false
}

// knownFrequency reports whether freq is in the documented domain
// {0, 25, 50, 75, 100}.
func knownFrequency(freq float64) bool {
	switch freq {
	case 0, 25, 50, 75, 100:
		return true
	}
	return false
}

// Degree is a three-level bucket of a 1-5 rating.
type Degree string

const (
	Low    Degree = "Low"
	Medium Degree = "Medium"
	High   Degree = "High"
)

// DegreeOrder orders degree buckets and stress levels alike.
var DegreeOrder = []string{string(Low), string(Medium), string(High)}

// Bucket classifies a rating: at most 2 is Low, exactly 3 is Medium and
// anything else, out-of-domain values included, is High.
func Bucket(rating float64) Degree {
	if rating <= 2 {
		return Low
	}
	if rating == 3 {
		return Medium
	}
	return High
}

// JobRoles are the roles kept in the cleaned mental-health table.
var JobRoles = []string{"Data Scientist", "Software Engineer", "Project Manager"}

func allowedRole(role string) bool {
	for _, r := range JobRoles {
		if r == role {
			return true
		}
	}
	return false
}
