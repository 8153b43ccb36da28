package dto

import "github.com/tendersaarthi/tendersaarthi-api/internal/models"

// AlertPreferenceRequest replaces the alert subscription of the current user.
type AlertPreferenceRequest struct {
	WhatsAppNumber string                `json:"whatsappNumber" validate:"required,e164"`
	Enabled        *bool                 `json:"enabled"`
	Frequency      models.AlertFrequency `json:"frequency" validate:"omitempty,oneof=instant"`
	Categories     []string              `json:"categories" validate:"max=50,dive,required"`
	States         []string              `json:"states" validate:"max=50,dive,required"`
	Keywords       []string              `json:"keywords" validate:"max=20,dive,required,max=100"`
	MinValue       *int64                `json:"minValue" validate:"omitempty,gte=0"`
	MaxValue       *int64                `json:"maxValue" validate:"omitempty,gte=0"`
}
