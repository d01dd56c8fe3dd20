package model

// VariesFee is the sentinel reported when no numeric consultation fees
// are present in a result set.
const VariesFee = "Varies"

// Lawyer is a candidate professional from the seeded directory. The
// response-time, emergency and expertise fields are presentation
// annotations derived at query time, not stored state.
type Lawyer struct {
	Name            string   `json:"name" yaml:"name"`
	Firm            string   `json:"firm" yaml:"firm"`
	Specialties     []string `json:"specialties" yaml:"specialties"`
	Address         string   `json:"address" yaml:"address"`
	Phone           string   `json:"phone" yaml:"phone"`
	Email           string   `json:"email" yaml:"email"`
	Website         string   `json:"website" yaml:"website"`
	YearsExperience int      `json:"years_experience" yaml:"years_experience"`
	Rating          float64  `json:"rating" yaml:"rating"`
	ConsultationFee string   `json:"consultation_fee" yaml:"consultation_fee"`
	DistanceMiles   float64  `json:"distance_miles" yaml:"distance_miles"`
	Notable         string   `json:"notable" yaml:"notable"`

	TypicalResponseTime    string `json:"typical_response_time,omitempty"`
	EmergencyAvailable     bool   `json:"emergency_available"`
	DigitalEstateExpertise string `json:"digital_estate_expertise,omitempty"`
}

// LawyerMatchReport is the result of a find-nearby-professionals query.
type LawyerMatchReport struct {
	Status            ResultStatus `json:"status"`
	Zipcode           string       `json:"zipcode"`
	SearchRadiusMiles int          `json:"search_radius_miles"`
	LawyersFound      int          `json:"lawyers_found"`
	Lawyers           []Lawyer     `json:"lawyers"`
	SearchTips        []string     `json:"search_tips"`
	QuestionsToAsk    []string     `json:"questions_to_ask"`
	AverageConsultFee string       `json:"average_consultation_fee"`
	Disclaimer        string       `json:"disclaimer"`
}
