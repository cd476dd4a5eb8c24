package notify

import (
	"fmt"
	"strings"

	"diaa-designs-backend/internal/models"
	"diaa-designs-backend/internal/orders"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"

func adminCVNotification(order *models.CVOrder) string {
	var b strings.Builder
	b.WriteString("🎯 طلب سيرة ذاتية جديد\n")
	b.WriteString(divider)
	b.WriteString("\n👤 معلومات العميل:\n")
	fmt.Fprintf(&b, "• الاسم: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "• البريد الإلكتروني: %s\n", order.CustomerEmail)
	fmt.Fprintf(&b, "• رقم الهاتف: %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "• المهنة: %s\n", order.Profession)
	fmt.Fprintf(&b, "• سنوات الخبرة: %s\n", textOr(order.Experience, "غير محدد"))
	b.WriteString("\n📦 تفاصيل الطلب:\n")
	fmt.Fprintf(&b, "• الباقة المختارة: %s\n", order.PackageName)
	fmt.Fprintf(&b, "• الخدمات الإضافية: %s\n", serviceNames(order.Services))
	fmt.Fprintf(&b, "• السعر الإجمالي: %d درهم\n", order.TotalPrice)
	b.WriteString("\n📄 السيرة الذاتية السابقة:\n")
	if order.HasAttachment() {
		fmt.Fprintf(&b, "• يوجد ملف سابق: نعم\n• اسم الملف: %s\n", *order.AttachmentName)
	} else {
		b.WriteString("• يوجد ملف سابق: لا\n• اسم الملف: لا يوجد\n")
	}
	fmt.Fprintf(&b, "\n📝 ملاحظات إضافية:\n%s\n\n", textOr(order.Notes, "لا توجد ملاحظات"))
	b.WriteString(divider)
	fmt.Fprintf(&b, "🕐 تاريخ الطلب: %s\n", order.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "🆔 رقم الطلب: %s\n\n", order.OrderRef)
	b.WriteString("يرجى التواصل مع العميل خلال 24 ساعة.\n")
	return b.String()
}

func customerCVConfirmation(order *models.CVOrder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "عزيزي/عزيزتي %s،\n\n", order.CustomerName)
	b.WriteString("شكراً لك على ثقتك في خدماتنا! 🙏\nتم استلام طلبك بنجاح وحفظه في نظامنا.\n\n")
	b.WriteString(divider)
	b.WriteString("📋 تفاصيل طلبك:\n")
	fmt.Fprintf(&b, "• رقم الطلب: %s\n", order.OrderRef)
	fmt.Fprintf(&b, "• الباقة المختارة: %s\n", order.PackageName)
	fmt.Fprintf(&b, "• المبلغ الإجمالي: %d درهم\n\n", order.TotalPrice)
	b.WriteString(divider)
	b.WriteString("⏰ الخطوات التالية:\n")
	b.WriteString("1. سنراجع تفاصيل طلبك خلال 24 ساعة\n")
	b.WriteString("2. سنتواصل معك لتأكيد التفاصيل\n")
	b.WriteString("3. سنبدأ العمل على سيرتك الذاتية\n")
	b.WriteString("4. سنرسل لك النسخة الأولى للمراجعة\n\n")
	b.WriteString("شكراً لثقتك بنا! ✨\n\nضياء الدين\nتصميم السير الذاتية الاحترافية\n")
	return b.String()
}

func adminLogoNotification(order *models.LogoOrder) string {
	var b strings.Builder
	b.WriteString("🎯 طلب تصميم لوجو جديد\n")
	b.WriteString(divider)
	b.WriteString("\n👤 معلومات العميل:\n")
	fmt.Fprintf(&b, "• الاسم: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "• البريد الإلكتروني: %s\n", order.CustomerEmail)
	fmt.Fprintf(&b, "• رقم الهاتف: %s\n", order.CustomerPhone)
	b.WriteString("\n🏢 معلومات الشركة:\n")
	fmt.Fprintf(&b, "• اسم الشركة: %s\n", order.BusinessName)
	fmt.Fprintf(&b, "• نوع النشاط: %s\n", order.BusinessType)
	b.WriteString("\n📦 تفاصيل الطلب:\n")
	fmt.Fprintf(&b, "• الباقة المختارة: %s\n", order.PackageName)
	fmt.Fprintf(&b, "• السعر الإجمالي: %d درهم\n", order.TotalPrice)
	fmt.Fprintf(&b, "• الألوان المفضلة: %s\n", textOr(order.Colors, "لم يحدد"))
	if len(order.Styles) > 0 {
		fmt.Fprintf(&b, "• أسلوب التصميم: %s\n", strings.Join(order.Styles, ", "))
	}
	if order.HasAttachment() {
		fmt.Fprintf(&b, "• ملف الإلهام: %s\n", *order.AttachmentName)
	}
	fmt.Fprintf(&b, "\n📝 ملاحظات إضافية:\n%s\n\n", textOr(order.Notes, "لا توجد ملاحظات"))
	b.WriteString(divider)
	fmt.Fprintf(&b, "🕐 تاريخ الطلب: %s\n", order.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "🆔 رقم الطلب: %s\n\n", order.OrderRef)
	b.WriteString("يرجى التواصل مع العميل خلال 24 ساعة.\n")
	return b.String()
}

func customerLogoConfirmation(order *models.LogoOrder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "عزيزي/عزيزتي %s،\n\n", order.CustomerName)
	b.WriteString("شكراً لك على ثقتك في خدماتنا! 🙏\nتم استلام طلب تصميم اللوجو بنجاح.\n\n")
	b.WriteString(divider)
	b.WriteString("📋 تفاصيل طلبك:\n")
	fmt.Fprintf(&b, "• رقم الطلب: %s\n", order.OrderRef)
	fmt.Fprintf(&b, "• الباقة المختارة: %s\n", order.PackageName)
	fmt.Fprintf(&b, "• المبلغ الإجمالي: %d درهم\n\n", order.TotalPrice)
	b.WriteString(divider)
	b.WriteString("⏰ الخطوات التالية:\n")
	b.WriteString("1. سنراجع تفاصيل طلبك خلال 24 ساعة\n")
	b.WriteString("2. سنتواصل معك لتأكيد التفاصيل\n")
	b.WriteString("3. سنبدأ العمل على تصميم اللوجو\n")
	b.WriteString("4. سنرسل لك النسخة الأولى للمراجعة\n\n")
	b.WriteString("شكراً لثقتك بنا! ✨\n\nضياء الدين للتصاميم\n")
	return b.String()
}

func textOr(value *string, fallback string) string {
	if value != nil && *value != "" {
		return *value
	}
	return fallback
}

func serviceNames(services []string) string {
	if len(services) == 0 {
		return "لا توجد خدمات إضافية"
	}
	names := make([]string, len(services))
	for i, svc := range services {
		names[i] = orders.CVServiceName(svc)
	}
	return strings.Join(names, ", ")
}
