// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// APPLICATION
// =============================================================================

// Application is a loan application record as served by the backend.
//
// The list endpoint returns the core fields; the detail endpoint returns the
// same record with the enrichment fields (summary, insights, analyses)
// populated. The client treats both shapes as the same type and simply
// renders what is present.
type Application struct {
	// Identity
	ID            string `json:"id"`
	ApplicationNo string `json:"application_no"`

	// Core row fields
	ApplicantName     string            `json:"applicant_name"`
	Industry          string            `json:"industry"`
	LoanAmount        int64             `json:"loan_amount,omitempty"`
	LoanAmountDisplay string            `json:"loan_amount_display"`
	LegalEntityType   string            `json:"legal_entity_type"`
	ApplicationStage  string            `json:"application_stage"`
	DocumentsStatus   DocumentsStatus   `json:"documents_status"`
	ApplicationStatus ApplicationStatus `json:"application_status"`
	ReviewStatus      ReviewStatus      `json:"review_status"`
	IsOverdue         bool              `json:"is_overdue"`

	// Enrichment (detail view)
	AIRecommendation        *AIRecommendation        `json:"ai_recommendation,omitempty"`
	CompanyInsights         []string                 `json:"company_insights,omitempty"`
	KeyRatios               *KeyRatios               `json:"key_ratios,omitempty"`
	CovenantRecommendations []CovenantRecommendation `json:"covenant_recommendations,omitempty"`
	Documents               []Document               `json:"documents,omitempty"`
	ApplicationSummary      string                   `json:"application_summary,omitempty"`
	InsightsSynthesis       string                   `json:"insights_synthesis,omitempty"`
	FinancialAnalysis       *FinancialAnalysis       `json:"financial_analysis,omitempty"`
	MacroAnalysis           *MacroAnalysis           `json:"macro_analysis,omitempty"`

	// Server-side timestamps (ISO 8601 strings; display-only)
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Title returns the human identifier shown in headers,
// e.g. "CL-3310 - Tesla".
func (a *Application) Title() string {
	return a.ApplicationNo + " - " + a.ApplicantName
}

// =============================================================================
// ENRICHMENT TYPES
// =============================================================================

// AIRecommendation is the AI agent's suggested action and rationale.
type AIRecommendation struct {
	Action string `json:"action"`
	Notes  string `json:"notes"`
}

// Document is one submitted document and its verification state.
type Document struct {
	Name   string          `json:"name"`
	Status DocumentsStatus `json:"status"`
}

// RatioPoint is one year's value of a financial ratio series.
type RatioPoint struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
}

// KeyRatios holds the ratio series rendered as charts in the detail view.
type KeyRatios struct {
	DebtToEquity     []RatioPoint `json:"debt_to_equity"`
	InterestCoverage []RatioPoint `json:"interest_coverage"`
}

// CovenantRecommendation is one suggested loan covenant.
type CovenantRecommendation struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// FinancialYear is one year of revenue and margin figures.
type FinancialYear struct {
	Year            string  `json:"year"`
	Amount          float64 `json:"amount"`
	OperatingMargin float64 `json:"operating_margin"`
}

// FinancialAnalysis is the AI's financial commentary plus the yearly series.
type FinancialAnalysis struct {
	Summary    string          `json:"summary"`
	Financials []FinancialYear `json:"financials"`
}

// PortersForce is one of the five competitive forces with a 1-5 score.
type PortersForce struct {
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// PortersForces holds the five-forces breakdown for the macro analysis tab.
type PortersForces struct {
	BuyerPower         PortersForce `json:"buyer_power"`
	SupplierPower      PortersForce `json:"supplier_power"`
	ThreatNewEntrants  PortersForce `json:"threat_new_entrants"`
	ThreatSubstitutes  PortersForce `json:"threat_substitutes"`
	CompetitiveRivalry PortersForce `json:"competitive_rivalry"`
}

// MacroAnalysis is the industry-level commentary and forces breakdown.
type MacroAnalysis struct {
	Summary       string         `json:"summary"`
	PortersForces *PortersForces `json:"porters_forces,omitempty"`
}
