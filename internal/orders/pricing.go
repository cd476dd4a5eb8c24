// Package orders holds the order domain: the fixed price tables, the Arabic
// status vocabulary, business reference generation and submission validation.
package orders

import "fmt"

// Package tiers, shared by both order kinds.
const (
	PackageBasic    = "basic"
	PackageAdvanced = "advanced"
	PackagePremium  = "premium"
)

// CV package prices in AED.
var cvPackages = map[string]int{
	PackageBasic:    150,
	PackageAdvanced: 250,
	PackagePremium:  400,
}

// Additional CV services in AED.
var cvServices = map[string]int{
	"update":       75,
	"translation":  100,
	"cover-letter": 50,
	"linkedin":     125,
}

// Logo package prices in AED.
var logoPackages = map[string]int{
	PackageBasic:    200,
	PackageAdvanced: 350,
	PackagePremium:  600,
}

var cvPackageNames = map[string]string{
	PackageBasic:    "الباقة الأساسية (150 درهم)",
	PackageAdvanced: "الباقة المتقدمة (250 درهم)",
	PackagePremium:  "الباقة الذهبية (400 درهم)",
}

var logoPackageNames = map[string]string{
	PackageBasic:    "باقة اللوجو الأساسية (200 درهم)",
	PackageAdvanced: "باقة اللوجو المتقدمة (350 درهم)",
	PackagePremium:  "باقة الهوية المتكاملة (600 درهم)",
}

var cvServiceNames = map[string]string{
	"update":       "تحديث السيرة الذاتية (75 درهم)",
	"translation":  "ترجمة إلى الإنجليزية (100 درهم)",
	"cover-letter": "خطاب تعريفي إضافي (50 درهم)",
	"linkedin":     "تحسين ملف LinkedIn (125 درهم)",
}

// CVTotal returns package price plus the price of every selected additional
// service. Unknown codes are an error, never a silent zero.
func CVTotal(pkg string, services []string) (int, error) {
	total, ok := cvPackages[pkg]
	if !ok {
		return 0, fmt.Errorf("unknown cv package %q", pkg)
	}
	for _, svc := range services {
		price, ok := cvServices[svc]
		if !ok {
			return 0, fmt.Errorf("unknown additional service %q", svc)
		}
		total += price
	}
	return total, nil
}

// LogoTotal returns the price of the selected logo package.
func LogoTotal(pkg string) (int, error) {
	total, ok := logoPackages[pkg]
	if !ok {
		return 0, fmt.Errorf("unknown logo package %q", pkg)
	}
	return total, nil
}

// CVPackageName resolves a package code to its Arabic display name.
func CVPackageName(pkg string) string {
	if name, ok := cvPackageNames[pkg]; ok {
		return name
	}
	return "غير محدد"
}

func LogoPackageName(pkg string) string {
	if name, ok := logoPackageNames[pkg]; ok {
		return name
	}
	return "غير محدد"
}

// CVServiceName resolves an additional service code to its Arabic display name.
func CVServiceName(svc string) string {
	if name, ok := cvServiceNames[svc]; ok {
		return name
	}
	return svc
}
