// services/business.go
package services

import "os"

// BusinessInfo holds the office contact details embedded in customer
// messages and served from the contact endpoint.
type BusinessInfo struct {
	Name     string
	NameAr   string
	Phone    string
	Email    string
	WhatsApp string
	Address  string
}

func LoadBusinessInfo() BusinessInfo {
	return BusinessInfo{
		Name:     envOr("BUSINESS_NAME", "Riyadh Al-Qahtani Travel Office"),
		NameAr:   envOr("BUSINESS_NAME_AR", "مكتب رياض القحطاني للسفريات"),
		Phone:    envOr("BUSINESS_PHONE", "+966501234567"),
		Email:    envOr("BUSINESS_EMAIL", "info@riyadh-travel.com"),
		WhatsApp: envOr("WHATSAPP_PHONE", "+966501234567"),
		Address:  envOr("BUSINESS_ADDRESS", "الرياض، المملكة العربية السعودية"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
