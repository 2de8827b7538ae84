package controllers

import (
	"net/http"
	"testing"
	"time"

	"riyadh-travel-backend/services"
	"riyadh-travel-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockContactAPI struct {
	sendMessageFn func(req services.ContactMessageRequest) (services.ContactOutcome, []utils.FieldError)
	subscribeFn   func(email, name string) ([]utils.FieldError, error)
}

func (m *mockContactAPI) SendMessage(req services.ContactMessageRequest) (services.ContactOutcome, []utils.FieldError) {
	return m.sendMessageFn(req)
}

func (m *mockContactAPI) Subscribe(email, name string) ([]utils.FieldError, error) {
	return m.subscribeFn(email, name)
}

func contactRouter(contact *mockContactAPI, whatsapp *mockWhatsAppAPI) *gin.Engine {
	Setup(nil, contact, whatsapp)

	r := gin.New()
	r.POST("/api/contact/message", SendContactMessage)
	r.GET("/api/contact/info", GetContactInfo)
	r.POST("/api/contact/newsletter", SubscribeNewsletter)
	r.GET("/api/health", Health)
	return r
}

func TestSendContactMessageHandler_Success(t *testing.T) {
	contact := &mockContactAPI{
		sendMessageFn: func(req services.ContactMessageRequest) (services.ContactOutcome, []utils.FieldError) {
			assert.Equal(t, "سارة", req.Name)
			return services.ContactOutcome{
				EmailSent:     true,
				WhatsappSent:  false,
				AutoReplySent: true,
				Timestamp:     time.Now(),
			}, nil
		},
	}
	r := contactRouter(contact, nil)

	w, body := doJSON(t, r, http.MethodPost, "/api/contact/message", gin.H{
		"name":    "سارة",
		"phone":   "0501234567",
		"message": "أرغب في معرفة متطلبات استخراج تأشيرة عمل.",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	details := body["details"].(map[string]interface{})
	assert.Equal(t, true, details["emailSent"])
	assert.Equal(t, false, details["whatsappSent"])
	assert.Equal(t, true, details["autoReplySent"])
}

func TestSendContactMessageHandler_ValidationErrors(t *testing.T) {
	contact := &mockContactAPI{
		sendMessageFn: func(req services.ContactMessageRequest) (services.ContactOutcome, []utils.FieldError) {
			return services.ContactOutcome{}, []utils.FieldError{
				{Field: "message", Message: "Message must be between 10 and 1000 characters"},
			}
		},
	}
	r := contactRouter(contact, nil)

	w, body := doJSON(t, r, http.MethodPost, "/api/contact/message", gin.H{
		"name":    "سارة",
		"phone":   "0501234567",
		"message": "قصير",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])

	errs := body["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "message", errs[0].(map[string]interface{})["field"])
}

func TestGetContactInfoHandler(t *testing.T) {
	whatsapp := &mockWhatsAppAPI{
		business: services.BusinessInfo{
			Phone:    "+966501234567",
			Email:    "info@riyadh-travel.com",
			WhatsApp: "+966501234567",
			Address:  "الرياض",
		},
	}
	r := contactRouter(nil, whatsapp)

	w, body := doJSON(t, r, http.MethodGet, "/api/contact/info", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	contact := body["contact"].(map[string]interface{})
	assert.Equal(t, "+966501234567", contact["phone"])
	assert.Equal(t, "info@riyadh-travel.com", contact["email"])

	hours := contact["workingHours"].(map[string]interface{})
	assert.Equal(t, "Closed", hours["friday"])
}

func TestSubscribeNewsletterHandler_Success(t *testing.T) {
	contact := &mockContactAPI{
		subscribeFn: func(email, name string) ([]utils.FieldError, error) {
			assert.Equal(t, "sara@example.com", email)
			return nil, nil
		},
	}
	r := contactRouter(contact, nil)

	w, body := doJSON(t, r, http.MethodPost, "/api/contact/newsletter", gin.H{
		"email": "sara@example.com",
		"name":  "سارة",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
}

func TestSubscribeNewsletterHandler_MissingEmail(t *testing.T) {
	contact := &mockContactAPI{}
	r := contactRouter(contact, nil)

	w, body := doJSON(t, r, http.MethodPost, "/api/contact/newsletter", gin.H{"name": "سارة"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs := body["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].(map[string]interface{})["field"])
}

func TestSubscribeNewsletterHandler_InvalidEmail(t *testing.T) {
	contact := &mockContactAPI{
		subscribeFn: func(email, name string) ([]utils.FieldError, error) {
			return []utils.FieldError{{Field: "email", Message: "A valid email address is required"}}, nil
		},
	}
	r := contactRouter(contact, nil)

	w, _ := doJSON(t, r, http.MethodPost, "/api/contact/newsletter", gin.H{"email": "nope"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthHandler(t *testing.T) {
	r := contactRouter(nil, nil)

	w, body := doJSON(t, r, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotNil(t, body["uptime"])
}
