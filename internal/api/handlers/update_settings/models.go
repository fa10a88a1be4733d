package update_settings

// UpdateSettingsRequest HTTP request model. Отсутствующие поля не меняются
type UpdateSettingsRequest struct {
	Notice     *string `json:"notice,omitempty"`
	WebhookURL *string `json:"webhookUrl,omitempty"`
}

// SettingsResponse HTTP response model
type SettingsResponse struct {
	Notice     string `json:"notice"`
	WebhookURL string `json:"webhookUrl"`
	UpdatedAt  string `json:"updatedAt"`
}
