// services/templates.go
//
// Customer-facing message templates, keyed by status or event. Loaded
// once at package init so the lifecycle logic stays free of
// presentation strings. Customer payloads are Arabic; field names stay
// English.
package services

import (
	"fmt"
	"time"

	"riyadh-travel-backend/models"
)

var statusMessages = map[models.BookingStatus]string{
	models.StatusPending:    "تم استلام طلبك وهو قيد المراجعة ⏳",
	models.StatusConfirmed:  "تم تأكيد طلبك! ✅",
	models.StatusProcessing: "طلبك قيد التنفيذ 🔄",
	models.StatusCompleted:  "تم إنجاز طلبك بنجاح! 🎉",
	models.StatusCancelled:  "تم إلغاء طلبك ❌",
}

// StatusUpdateMessage renders the fixed per-status notification. The
// second return is false for statuses outside the enumerated set.
func StatusUpdateMessage(b *models.Booking, status models.BookingStatus) (string, bool) {
	headline, ok := statusMessages[status]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(`%s

رقم الطلب: %s
الخدمة: %s

للمزيد من المعلومات تواصل معنا.`, headline, b.BookingID, b.ServiceDetails.ServiceTitleAr), true
}

// BookingConfirmationMessage renders the Arabic booking confirmation.
func BookingConfirmationMessage(b *models.Booking, biz BusinessInfo) string {
	return fmt.Sprintf(`🎉 تم تأكيد حجزك بنجاح!

📋 رقم الحجز: %s
👤 الاسم: %s
🛎️ الخدمة: %s
💰 المبلغ: %.0f %s

📞 للتواصل: %s
📧 Email: %s

شكراً لثقتكم في %s! 🇸🇦`,
		b.BookingID,
		b.CustomerInfo.FullName,
		b.ServiceDetails.ServiceTitleAr,
		b.PaymentInfo.TotalAmount,
		b.PaymentInfo.Currency,
		biz.Phone,
		biz.Email,
		biz.NameAr)
}

// FollowUpMessage renders the reminder sent to customers whose booking
// has sat in pending past the follow-up window.
func FollowUpMessage(b *models.Booking) string {
	return fmt.Sprintf(`⏳ تذكير بطلبك

رقم الطلب: %s
الخدمة: %s

طلبك ما زال قيد المراجعة وسيتم التواصل معك قريباً. نشكر صبركم.`,
		b.BookingID, b.ServiceDetails.ServiceTitleAr)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// ContactInquiryEmail renders the business-inbox notification for an
// inbound contact message.
func ContactInquiryEmail(name, phone, email, subject, message string, biz BusinessInfo) (string, string) {
	mailSubject := fmt.Sprintf("رسالة جديدة من الموقع: %s", orDefault(subject, "استفسار عام"))
	body := fmt.Sprintf(`<h2>رسالة جديدة من موقع %s</h2>
<p><strong>الاسم:</strong> %s</p>
<p><strong>الهاتف:</strong> %s</p>
<p><strong>الإيميل:</strong> %s</p>
<p><strong>الموضوع:</strong> %s</p>
<p><strong>الرسالة:</strong></p>
<p>%s</p>
<hr>
<p><small>تم إرسالها في: %s</small></p>`,
		biz.NameAr,
		name,
		phone,
		orDefault(email, "غير محدد"),
		orDefault(subject, "غير محدد"),
		message,
		time.Now().Format("2006-01-02 15:04:05"))
	return mailSubject, body
}

// ContactInquiryWhatsApp renders the same inquiry for the business
// notification number.
func ContactInquiryWhatsApp(name, phone, email, subject, message string, biz BusinessInfo) string {
	return fmt.Sprintf(`📬 رسالة جديدة من الموقع

👤 الاسم: %s
📱 الهاتف: %s
📧 الإيميل: %s
📋 الموضوع: %s

💬 الرسالة:
%s

---
من: موقع %s`,
		name,
		phone,
		orDefault(email, "غير محدد"),
		orDefault(subject, "استفسار عام"),
		message,
		biz.NameAr)
}

// ContactAutoReply renders the fixed acknowledgement sent back to the
// submitter.
func ContactAutoReply(name string, biz BusinessInfo) string {
	return fmt.Sprintf(`مرحباً %s!

شكراً لتواصلك معنا في %s.

✅ تم استلام رسالتك وسنقوم بالرد عليك في أقرب وقت ممكن.

📞 للاستفسارات العاجلة:
%s

🇸🇦 %s للسفريات والسياحة والأيدي العاملة`,
		name, biz.NameAr, biz.Phone, biz.NameAr)
}

// NewsletterWelcomeEmail renders the subscription confirmation.
func NewsletterWelcomeEmail(name string, biz BusinessInfo) (string, string) {
	subject := fmt.Sprintf("مرحباً بك في نشرتنا البريدية - %s", biz.NameAr)
	body := fmt.Sprintf(`<h2>مرحباً %s! 🎉</h2>
<p>شكراً لانضمامك إلى نشرتنا البريدية.</p>
<p>ستحصل على:</p>
<ul>
<li>آخر العروض والخدمات الجديدة</li>
<li>نصائح السفر والسياحة</li>
<li>تحديثات الأسعار والعروض الخاصة</li>
</ul>
<p>🇸🇦 %s للسفريات والسياحة والأيدي العاملة</p>`,
		orDefault(name, "بك"), biz.NameAr)
	return subject, body
}
