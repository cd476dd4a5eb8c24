package attachments

import (
	"fmt"
	"log"
	"strings"
	"time"

	"diaa-designs-backend/internal/models"
)

// The info file is the download fallback: a plain-text rendering of every
// known field of the order, so the admin is never met with a dead end.

func cvInfoFile(order *models.CVOrder, cause error) DownloadResult {
	log.Printf("attachments: falling back to info file for %s: %v", order.OrderRef, cause)

	var b strings.Builder
	fmt.Fprintf(&b, "معلومات طلب السيرة الذاتية - %s\n", order.CustomerName)
	b.WriteString("═══════════════════════════════════════════\n\n")

	b.WriteString("👤 معلومات العميل:\n")
	fmt.Fprintf(&b, "📧 البريد الإلكتروني: %s\n", order.CustomerEmail)
	fmt.Fprintf(&b, "📱 الهاتف: %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "💼 المهنة: %s\n", order.Profession)
	fmt.Fprintf(&b, "📈 سنوات الخبرة: %s\n\n", orText(order.Experience, "غير محدد"))

	b.WriteString("📦 تفاصيل الطلب:\n")
	fmt.Fprintf(&b, "🆔 رقم الطلب: %s\n", order.OrderRef)
	fmt.Fprintf(&b, "📋 الباقة: %s\n", order.PackageName)
	fmt.Fprintf(&b, "➕ الخدمات الإضافية: %s\n", servicesLine(order.Services))
	fmt.Fprintf(&b, "💰 السعر: %d درهم\n", order.TotalPrice)
	fmt.Fprintf(&b, "📅 التاريخ: %s\n", orderDate(order.CreatedAt))
	fmt.Fprintf(&b, "📊 الحالة: %s\n\n", order.Status)

	fmt.Fprintf(&b, "📁 الملف المرفوع: %s\n", orText(order.AttachmentName, "لا يوجد"))
	fmt.Fprintf(&b, "📝 الملاحظات: %s\n\n", orText(order.Notes, "لا توجد ملاحظات"))

	b.WriteString("═══════════════════════════════════════════\n")
	b.WriteString("تم إنشاء هذا الملف تلقائياً\n\nضياء الدين للتصاميم\n")

	return DownloadResult{
		Success:     true,
		Fallback:    true,
		Filename:    fmt.Sprintf("CV_Order_%s_%s.txt", order.CustomerName, order.OrderRef),
		Data:        []byte(b.String()),
		ContentType: "text/plain; charset=utf-8",
		Err:         cause,
	}
}

func logoInfoFile(order *models.LogoOrder, cause error) DownloadResult {
	log.Printf("attachments: falling back to info file for %s: %v", order.OrderRef, cause)

	var b strings.Builder
	fmt.Fprintf(&b, "معلومات طلب اللوجو - %s\n", order.CustomerName)
	b.WriteString("═══════════════════════════════════════════\n\n")

	b.WriteString("👤 معلومات العميل:\n")
	fmt.Fprintf(&b, "📧 البريد الإلكتروني: %s\n", order.CustomerEmail)
	fmt.Fprintf(&b, "📱 الهاتف: %s\n\n", order.CustomerPhone)

	b.WriteString("🏢 معلومات الشركة:\n")
	fmt.Fprintf(&b, "🏪 اسم الشركة: %s\n", order.BusinessName)
	fmt.Fprintf(&b, "📊 نوع النشاط: %s\n\n", order.BusinessType)

	b.WriteString("📦 تفاصيل الطلب:\n")
	fmt.Fprintf(&b, "🆔 رقم الطلب: %s\n", order.OrderRef)
	fmt.Fprintf(&b, "📋 باقة اللوجو: %s\n", order.PackageName)
	fmt.Fprintf(&b, "💰 السعر: %d درهم\n", order.TotalPrice)
	fmt.Fprintf(&b, "📅 التاريخ: %s\n", orderDate(order.CreatedAt))
	fmt.Fprintf(&b, "📊 الحالة: %s\n\n", order.Status)

	b.WriteString("🎨 تفضيلات التصميم:\n")
	fmt.Fprintf(&b, "🌈 الألوان المفضلة: %s\n", orText(order.Colors, "لم يحدد"))
	fmt.Fprintf(&b, "🎯 أسلوب التصميم: %s\n\n", stylesLine(order.Styles))

	fmt.Fprintf(&b, "📁 ملف الإلهام المرفوع: %s\n", orText(order.AttachmentName, "لا يوجد"))
	fmt.Fprintf(&b, "📝 الملاحظات: %s\n\n", orText(order.Notes, "لا توجد ملاحظات"))

	b.WriteString("═══════════════════════════════════════════\n")
	b.WriteString("تم إنشاء هذا الملف تلقائياً\n\nضياء الدين للتصاميم\n")

	return DownloadResult{
		Success:     true,
		Fallback:    true,
		Filename:    fmt.Sprintf("Logo_Order_%s_%s.txt", order.CustomerName, order.OrderRef),
		Data:        []byte(b.String()),
		ContentType: "text/plain; charset=utf-8",
		Err:         cause,
	}
}

func orText(value *string, fallback string) string {
	if value != nil && *value != "" {
		return *value
	}
	return fallback
}

func servicesLine(services []string) string {
	if len(services) == 0 {
		return "لا توجد خدمات إضافية"
	}
	return strings.Join(services, ", ")
}

func stylesLine(styles []string) string {
	if len(styles) == 0 {
		return "لم يحدد"
	}
	return strings.Join(styles, ", ")
}

func orderDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
