package services

import (
	"errors"
	"strings"

	"agrimitra/internal/models"
)

// ErrSchemeNotFound is returned when a scheme name has no entry.
var ErrSchemeNotFound = errors.New("scheme not found")

// schemesDatabase is the static stand-in for a real scheme registry.
var schemesDatabase = []models.GovernmentScheme{
	{
		Name:        "PM-KISAN Samman Nidhi",
		Description: "Direct income support to farmers providing ₹6000 per year in three equal installments",
		Category:    "subsidy",
		Eligibility: []string{
			"Small and marginal farmers",
			"Land holding up to 2 hectares",
			"Valid Aadhaar card required",
			"Bank account linked with Aadhaar",
		},
		Benefits: []string{
			"₹2000 per installment (3 times a year)",
			"Direct bank transfer",
			"No paperwork after initial registration",
		},
		ApplicationProcess: []string{
			"Visit nearest Common Service Center (CSC)",
			"Provide land documents and Aadhaar",
			"Fill PM-KISAN application form",
			"Submit documents for verification",
			"Receive confirmation SMS",
		},
		DocumentsRequired: []string{
			"Aadhaar Card",
			"Bank Account Details",
			"Land Ownership Documents",
			"Mobile Number",
		},
		ApplicationLink: "https://pmkisan.gov.in",
		Deadline:        "Open throughout the year",
		ContactInfo: map[string]string{
			"helpline": "155261",
			"email":    "pmkisan-ict@gov.in",
		},
	},
	{
		Name:        "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
		Description: "Crop insurance scheme providing financial support in case of crop loss due to natural calamities",
		Category:    "insurance",
		Eligibility: []string{
			"All farmers (sharecroppers and tenant farmers included)",
			"Must have insurable interest in the crop",
			"Should be growing notified crops in notified areas",
		},
		Benefits: []string{
			"Low premium rates (2% for Kharif, 1.5% for Rabi)",
			"Coverage for yield losses",
			"Quick settlement of claims",
			"Technology-based damage assessment",
		},
		ApplicationProcess: []string{
			"Approach nearest bank or insurance company",
			"Fill crop insurance application",
			"Pay premium amount",
			"Receive insurance certificate",
			"Report crop loss within 72 hours if occurs",
		},
		DocumentsRequired: []string{
			"Aadhaar Card",
			"Bank Account Details",
			"Land Records",
			"Crop Sowing Certificate",
		},
		ApplicationLink: "https://pmfby.gov.in",
		Deadline:        "Usually 1 month before harvest",
		ContactInfo: map[string]string{
			"helpline": "14434",
			"email":    "support@pmfby.gov.in",
		},
	},
	{
		Name:        "Kisan Credit Card (KCC)",
		Description: "Easy access to credit for farmers to meet their production and consumption needs",
		Category:    "loan",
		Eligibility: []string{
			"All farmers (individual/joint borrowers)",
			"Tenant farmers and sharecroppers",
			"Self Help Group members",
			"Minimum 18 years age",
		},
		Benefits: []string{
			"Interest rate 7% per annum",
			"No collateral required up to ₹1.6 lakh",
			"Flexible repayment options",
			"Insurance coverage included",
		},
		ApplicationProcess: []string{
			"Visit nearest bank branch",
			"Fill KCC application form",
			"Submit required documents",
			"Bank verification process",
			"Receive KCC within 15 days",
		},
		DocumentsRequired: []string{
			"Identity Proof (Aadhaar/PAN)",
			"Address Proof",
			"Land Documents",
			"Income Proof",
		},
		ApplicationLink: "https://www.nabard.org/kcc",
		Deadline:        "Open throughout the year",
		ContactInfo: map[string]string{
			"helpline": "1800-180-1111",
			"website":  "nabard.org",
		},
	},
	{
		Name:        "Soil Health Card Scheme",
		Description: "Provides soil health information to farmers for appropriate nutrient management",
		Category:    "training",
		Eligibility: []string{
			"All farmers",
			"No land size restriction",
			"Available for all crop types",
		},
		Benefits: []string{
			"Free soil testing",
			"Nutrient recommendations",
			"Fertilizer recommendations",
			"Improved crop productivity",
		},
		ApplicationProcess: []string{
			"Contact local agriculture officer",
			"Register for soil sampling",
			"Collect soil samples as per guidelines",
			"Submit samples to testing lab",
			"Receive soil health card",
		},
		DocumentsRequired: []string{
			"Land ownership documents",
			"Aadhaar Card",
			"Survey number details",
		},
		ApplicationLink: "https://soilhealth.dac.gov.in",
		Deadline:        "Open throughout the year",
		ContactInfo: map[string]string{
			"helpline": "011-23382401",
			"email":    "info@soilhealth.com",
		},
	},
	{
		Name:        "Micro Irrigation Subsidy",
		Description: "Financial assistance for drip and sprinkler irrigation systems",
		Category:    "subsidy",
		Eligibility: []string{
			"All categories of farmers",
			"Minimum 0.2 hectare land",
			"Maximum 5 hectare per beneficiary",
		},
		Benefits: []string{
			"55% subsidy for general farmers",
			"75% subsidy for SC/ST farmers",
			"Water conservation",
			"Increased crop yield",
		},
		ApplicationProcess: []string{
			"Apply through horticulture department",
			"Submit detailed project report",
			"Technical approval from department",
			"Installation after approval",
			"Claim subsidy after completion",
		},
		DocumentsRequired: []string{
			"Land documents",
			"Aadhaar Card",
			"Bank account details",
			"Caste certificate (if applicable)",
		},
		ApplicationLink: "https://pmksy.gov.in",
		Deadline:        "Usually April-May each year",
		ContactInfo: map[string]string{
			"helpline": "011-23382477",
			"email":    "pmksy@nic.in",
		},
	},
}

// keywordCategories maps query keywords to scheme categories for the
// fallback lookup when direct text matching finds nothing.
var keywordCategories = []struct {
	keyword    string
	categories []string
}{
	{"loan", []string{"loan"}},
	{"credit", []string{"loan"}},
	{"insurance", []string{"insurance"}},
	{"subsidy", []string{"subsidy"}},
	{"training", []string{"training"}},
	{"irrigation", []string{"subsidy"}},
	{"water", []string{"subsidy"}},
	{"income", []string{"subsidy"}},
}

// searchSuggestions is the fixed list returned with every search.
var searchSuggestions = []string{
	"Crop insurance schemes",
	"Irrigation subsidies",
	"Farmer loans and credit",
	"Soil testing programs",
	"Direct benefit transfer schemes",
}

// schemeCategories is the category listing.
var schemeCategories = []models.SchemeCategory{
	{ID: "subsidy", Name: "Subsidies & Financial Aid"},
	{ID: "loan", Name: "Loans & Credit"},
	{ID: "insurance", Name: "Insurance Schemes"},
	{ID: "training", Name: "Training & Development"},
}

// popularSchemeNames selects the entries for the popular listing.
var popularSchemeNames = []string{
	"PM-KISAN Samman Nidhi",
	"Pradhan Mantri Fasal Bima Yojana (PMFBY)",
	"Kisan Credit Card (KCC)",
}

// SchemeService serves the static government-scheme registry.
type SchemeService struct{}

// NewSchemeService creates a scheme service.
func NewSchemeService() *SchemeService {
	return &SchemeService{}
}

// Search matches query words against scheme names, descriptions and
// benefits, optionally filtered by category. When nothing matches directly,
// schemes are selected by category keywords found in the query. At most five
// schemes are returned.
func (s *SchemeService) Search(query, state, category string) models.SchemeSearchResponse {
	queryWords := strings.Fields(strings.ToLower(query))
	var matching []models.GovernmentScheme

	for _, scheme := range schemesDatabase {
		if category != "" && scheme.Category != category {
			continue
		}
		searchable := strings.ToLower(
			scheme.Name + " " + scheme.Description + " " + strings.Join(scheme.Benefits, " "))
		for _, word := range queryWords {
			if strings.Contains(searchable, word) {
				matching = append(matching, scheme)
				break
			}
		}
	}

	if len(matching) == 0 {
		lowerQuery := strings.ToLower(query)
		for _, kc := range keywordCategories {
			if !strings.Contains(lowerQuery, kc.keyword) {
				continue
			}
			for _, scheme := range schemesDatabase {
				for _, c := range kc.categories {
					if scheme.Category == c {
						matching = append(matching, scheme)
						break
					}
				}
			}
			break
		}
	}

	total := len(matching)
	if len(matching) > 5 {
		matching = matching[:5]
	}
	if matching == nil {
		matching = []models.GovernmentScheme{}
	}

	return models.SchemeSearchResponse{
		Schemes:           matching,
		TotalFound:        total,
		SearchSuggestions: searchSuggestions,
	}
}

// Categories lists the scheme categories.
func (s *SchemeService) Categories() []models.SchemeCategory {
	return schemeCategories
}

// Popular lists the most commonly used schemes.
func (s *SchemeService) Popular() []models.SchemePreview {
	previews := make([]models.SchemePreview, 0, len(popularSchemeNames))
	for _, scheme := range schemesDatabase {
		for _, name := range popularSchemeNames {
			if scheme.Name == name {
				previews = append(previews, models.SchemePreview{
					Name:            scheme.Name,
					Description:     scheme.Description,
					Category:        scheme.Category,
					ApplicationLink: scheme.ApplicationLink,
				})
				break
			}
		}
	}
	return previews
}

// GetByName looks a scheme up by its exact name, case-insensitively.
func (s *SchemeService) GetByName(name string) (*models.GovernmentScheme, error) {
	for i := range schemesDatabase {
		if strings.EqualFold(schemesDatabase[i].Name, name) {
			return &schemesDatabase[i], nil
		}
	}
	return nil, ErrSchemeNotFound
}
