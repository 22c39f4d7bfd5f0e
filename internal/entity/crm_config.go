package entity

import "context"

// CRMConfig is the per-user third-party CRM settings blob, stored as
// jsonb in user_settings. All fields optional.
type CRMConfig struct {
	HubspotAPIKey          string `json:"hubspot_api_key,omitempty"`
	SalesforceClientID     string `json:"salesforce_client_id,omitempty"`
	SalesforceClientSecret string `json:"salesforce_client_secret,omitempty"`
	SalesforceRefreshToken string `json:"salesforce_refresh_token,omitempty"`
	LastSync               string `json:"last_sync,omitempty"`
}

type SettingsRepositoryInterface interface {
	// GetCRMConfig returns nil without error when the user has no settings row.
	GetCRMConfig(ctx context.Context, userID string) (*CRMConfig, error)
	// SaveCRMConfig has read-or-create-then-update semantics.
	SaveCRMConfig(ctx context.Context, userID string, config *CRMConfig) error
}
