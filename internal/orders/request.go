package orders

import "fmt"

// Experience brackets accepted on CV orders. Optional field.
var experienceBrackets = map[string]bool{
	"fresh": true,
	"1-2":   true,
	"3-5":   true,
	"6-10":  true,
	"10+":   true,
}

// Business types accepted on logo orders.
var businessTypes = map[string]bool{
	"تقنية ومعلومات":        true,
	"طبية وصحية":            true,
	"تعليمية":               true,
	"مطاعم وضيافة":          true,
	"تجارة وبيع التجزئة":    true,
	"خدمات مالية":           true,
	"عقارات":                true,
	"رياضة ولياقة":          true,
	"جمال وتجميل":           true,
	"استشارات":              true,
	"أخرى":                  true,
}

// Style preference tags accepted on logo orders.
var styleTags = map[string]bool{
	"modern":       true,
	"classic":      true,
	"minimalist":   true,
	"bold":         true,
	"elegant":      true,
	"playful":      true,
	"professional": true,
	"artistic":     true,
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every problem found in a submission so the form can
// flag all of them at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission invalid: %d field(s) rejected", len(e.Fields))
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// CVRequest is a CV order as submitted by the public form, before pricing and
// persistence.
type CVRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Profession string   `json:"profession"`
	Experience string   `json:"experience"`
	Package    string   `json:"package"`
	Services   []string `json:"additional_services"`
	Notes      string   `json:"notes"`
}

func (r *CVRequest) Validate() error {
	ve := &ValidationError{}
	requireField(ve, "name", r.Name)
	requireField(ve, "email", r.Email)
	requireField(ve, "phone", r.Phone)
	requireField(ve, "profession", r.Profession)
	if r.Package == "" {
		ve.add("package", "يرجى اختيار الباقة")
	} else if _, ok := cvPackages[r.Package]; !ok {
		ve.add("package", "الباقة المختارة غير معروفة")
	}
	for _, svc := range r.Services {
		if _, ok := cvServices[svc]; !ok {
			ve.add("additional_services", "خدمة إضافية غير معروفة: "+svc)
		}
	}
	if r.Experience != "" && !experienceBrackets[r.Experience] {
		ve.add("experience", "فئة الخبرة غير معروفة")
	}
	return ve.orNil()
}

// LogoRequest is a logo order as submitted by the public form.
type LogoRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	BusinessName string   `json:"business_name"`
	BusinessType string   `json:"business_type"`
	Package      string   `json:"logo_package"`
	Styles       []string `json:"style_preferences"`
	Colors       string   `json:"color_preferences"`
	Notes        string   `json:"notes"`
}

func (r *LogoRequest) Validate() error {
	ve := &ValidationError{}
	requireField(ve, "name", r.Name)
	requireField(ve, "email", r.Email)
	requireField(ve, "phone", r.Phone)
	requireField(ve, "business_name", r.BusinessName)
	if r.BusinessType == "" {
		ve.add("business_type", "هذا الحقل مطلوب")
	} else if !businessTypes[r.BusinessType] {
		ve.add("business_type", "نوع النشاط غير معروف")
	}
	if r.Package == "" {
		ve.add("logo_package", "يرجى اختيار الباقة")
	} else if _, ok := logoPackages[r.Package]; !ok {
		ve.add("logo_package", "الباقة المختارة غير معروفة")
	}
	for _, tag := range r.Styles {
		if !styleTags[tag] {
			ve.add("style_preferences", "أسلوب تصميم غير معروف: "+tag)
		}
	}
	return ve.orNil()
}

func requireField(ve *ValidationError, field, value string) {
	if value == "" {
		ve.add(field, "هذا الحقل مطلوب")
	}
}
