package models

import "time"

// Client is a stored customer account with its brand attributes and an
// optional free-text instruction document used during content generation.
type Client struct {
	ID                   int        `json:"id"`
	CompanyName          string     `json:"company_name"`
	ContactPerson        string     `json:"contact_person"`
	Email                string     `json:"email"`
	PlanType             string     `json:"plan_type"`
	BrandTone            string     `json:"brand_tone"`
	AudienceType         string     `json:"audience_type"`
	MarketingSuggestions bool       `json:"marketing_suggestions"`
	Status               string     `json:"status"`
	DateJoined           time.Time  `json:"date_joined"`
	LastActivity         *time.Time `json:"last_activity"`
	InstructionDocument  *string    `json:"instruction_document"`
	DocumentFilename     *string    `json:"document_filename"`
}

// ClientCreate carries the fields accepted when creating a client.
// MarketingSuggestions defaults to true when omitted.
type ClientCreate struct {
	CompanyName          string  `json:"company_name" binding:"required"`
	ContactPerson        string  `json:"contact_person" binding:"required"`
	Email                string  `json:"email" binding:"required,email"`
	PlanType             string  `json:"plan_type" binding:"required"`
	BrandTone            string  `json:"brand_tone" binding:"required"`
	AudienceType         string  `json:"audience_type" binding:"required"`
	MarketingSuggestions *bool   `json:"marketing_suggestions"`
	InstructionDocument  *string `json:"instruction_document"`
	DocumentFilename     *string `json:"document_filename"`
}

// ClientUpdate carries a partial update. Nil fields are left unchanged,
// so a caller cannot clear a field by sending null - matching the
// original storage contract.
type ClientUpdate struct {
	CompanyName          *string `json:"company_name"`
	ContactPerson        *string `json:"contact_person"`
	Email                *string `json:"email"`
	PlanType             *string `json:"plan_type"`
	BrandTone            *string `json:"brand_tone"`
	AudienceType         *string `json:"audience_type"`
	MarketingSuggestions *bool   `json:"marketing_suggestions"`
	Status               *string `json:"status"`
	InstructionDocument  *string `json:"instruction_document"`
	DocumentFilename     *string `json:"document_filename"`
}

// ClientPage is a page of search results plus the pre-pagination total.
type ClientPage struct {
	Clients  []Client `json:"clients"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}
