package post

// Kind names a post form variant.
type Kind string

const (
	KindJob           Kind = "job"
	KindAdmitOrResult Kind = "admitOrResult"
	KindGeneric       Kind = "generic"
)

// Variant-gated fields.
const (
	FieldAgeLimit                 = "ageLimit"
	FieldFees                     = "fees"
	FieldTotalPosts               = "totalPosts"
	FieldEducationalQualification = "educationalQualification"
	FieldCategoryWiseVacancy      = "categoryWiseVacancy"
	FieldPostWiseVacancy          = "postWiseVacancy"
	FieldPhysicalStandardTest     = "physicalStandardTest"
	FieldPhysicalEfficiencyTest   = "physicalEfficiencyTest"
	FieldAvailabilityNote         = "availabilityNote"
)

// Variant is the field subset a category kind adds to the common post fields.
type Variant struct {
	Kind   Kind
	Fields []string
}

var (
	jobVariant = Variant{Kind: KindJob, Fields: []string{
		FieldAgeLimit,
		FieldFees,
		FieldTotalPosts,
		FieldEducationalQualification,
		FieldCategoryWiseVacancy,
		FieldPostWiseVacancy,
		FieldPhysicalStandardTest,
		FieldPhysicalEfficiencyTest,
	}}
	admitOrResultVariant = Variant{Kind: KindAdmitOrResult, Fields: []string{FieldAvailabilityNote}}
	genericVariant       = Variant{Kind: KindGeneric}
)

// VariantFor picks the variant for a category slug.
func VariantFor(categorySlug string) Variant {
	switch categorySlug {
	case "latest-jobs":
		return jobVariant
	case "admit-card", "result":
		return admitOrResultVariant
	default:
		return genericVariant
	}
}

// Shows reports whether field belongs to the variant.
func (v Variant) Shows(field string) bool {
	for _, f := range v.Fields {
		if f == field {
			return true
		}
	}
	return false
}

func (v Variant) IsJob() bool { return v.Kind == KindJob }

func (v Variant) IsAdmitOrResult() bool { return v.Kind == KindAdmitOrResult }
