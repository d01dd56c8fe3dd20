package model

// Platform is one entry of the static platform reference table. The
// timeline bounds drive lifecycle tier derivation; the rest feeds the
// template binder and the discovery heuristic.
type Platform struct {
	Name            string   `json:"name" yaml:"name"`
	Domain          string   `json:"domain" yaml:"domain"`
	SupportEmail    string   `json:"support_email" yaml:"support_email"`
	Process         string   `json:"process" yaml:"process"`
	Timeline        string   `json:"timeline" yaml:"timeline"`
	TimelineDaysMin int      `json:"timeline_days_min" yaml:"timeline_days_min"`
	TimelineDaysMax int      `json:"timeline_days_max" yaml:"timeline_days_max"`
	FormURL         string   `json:"form_url" yaml:"form_url"`
	Services        []string `json:"services" yaml:"services"`
	Difficulty      string   `json:"difficulty" yaml:"difficulty"`
	SuccessRate     int      `json:"success_rate" yaml:"success_rate"`
	PrimaryMethod   string   `json:"primary_method" yaml:"primary_method"`
	RequiredDocs    []string `json:"required_documents" yaml:"required_documents"`
	EstimatedValue  string   `json:"estimated_value" yaml:"estimated_value"`
	Common          bool     `json:"common" yaml:"common"`
	MailingAddress  string   `json:"mailing_address,omitempty" yaml:"mailing_address"`
	LetterSubject   string   `json:"letter_subject,omitempty" yaml:"letter_subject"`
	SpecialNote     string   `json:"special_note,omitempty" yaml:"special_note"`
}

// FormGuide holds step-by-step form instructions for one platform.
type FormGuide struct {
	Platform          string   `json:"platform" yaml:"platform"`
	FormURL           string   `json:"form_url" yaml:"form_url"`
	FormName          string   `json:"form_name" yaml:"form_name"`
	EstimatedTime     string   `json:"estimated_completion_time" yaml:"estimated_time"`
	ProcessingTime    string   `json:"processing_time" yaml:"processing_time"`
	SuccessRate       string   `json:"success_rate" yaml:"success_rate"`
	Instructions      string   `json:"instructions" yaml:"instructions"`
	RequiredDocuments []string `json:"required_documents" yaml:"required_documents"`
}

// FormGuideReport is the result of a get-form-instructions query. Misses
// are strict: no default guide is substituted.
type FormGuideReport struct {
	Status             ResultStatus `json:"status"`
	Platform           string       `json:"platform,omitempty"`
	Guide              *FormGuide   `json:"guide,omitempty"`
	Summary            string       `json:"summary,omitempty"`
	Message            string       `json:"message,omitempty"`
	AvailablePlatforms []string     `json:"available_platforms,omitempty"`
}

// PlatformOption is the comparison view of one platform.
type PlatformOption struct {
	Services      []string `json:"services"`
	Difficulty    string   `json:"difficulty"`
	Timeline      string   `json:"timeline"`
	SuccessRate   string   `json:"success_rate"`
	PrimaryMethod string   `json:"primary_method"`
}

// PlatformOptionsReport is the result of a list-platform-options query.
type PlatformOptionsReport struct {
	Status              ResultStatus              `json:"status"`
	SupportedPlatforms  map[string]PlatformOption `json:"supported_platforms"`
	GeneralRequirements []string                  `json:"general_requirements"`
	RecommendedOrder    []string                  `json:"recommended_order"`
	Tips                []string                  `json:"tips"`
}

// StateLaw describes one jurisdiction's digital-asset inheritance law.
type StateLaw struct {
	LawName            string   `json:"law_name" yaml:"law_name"`
	CodeSection        string   `json:"code_section" yaml:"code_section"`
	KeyProvisions      []string `json:"key_provisions" yaml:"key_provisions"`
	ExecutorPowers     string   `json:"executor_powers" yaml:"executor_powers"`
	CourtOrderRequired string   `json:"court_order_required" yaml:"court_order_required"`
}

// StateLawReport is the result of a check-jurisdiction-law query.
type StateLawReport struct {
	Status              ResultStatus `json:"status"`
	State               string       `json:"state"`
	DigitalAssetLaw     StateLaw     `json:"digital_asset_law"`
	Recommendation      string       `json:"recommendation"`
	ComplianceChecklist []string     `json:"compliance_checklist"`
}
