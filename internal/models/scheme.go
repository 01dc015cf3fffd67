package models

// GovernmentScheme describes a single agricultural support scheme.
type GovernmentScheme struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Category           string            `json:"category"` // "subsidy", "loan", "insurance", "training"
	Eligibility        []string          `json:"eligibility"`
	Benefits           []string          `json:"benefits"`
	ApplicationProcess []string          `json:"application_process"`
	DocumentsRequired  []string          `json:"documents_required"`
	ApplicationLink    string            `json:"application_link,omitempty"`
	Deadline           string            `json:"deadline,omitempty"`
	ContactInfo        map[string]string `json:"contact_info"`
}

// SchemeSearchResponse is the result of a scheme search.
type SchemeSearchResponse struct {
	Schemes           []GovernmentScheme `json:"schemes"`
	TotalFound        int                `json:"total_found"`
	SearchSuggestions []string           `json:"search_suggestions"`
}

// SchemeCategory is one entry in the category listing.
type SchemeCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SchemePreview is a condensed scheme entry for the popular listing.
type SchemePreview struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	ApplicationLink string `json:"application_link,omitempty"`
}
