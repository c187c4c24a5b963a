package types

// DomFieldDescriptor is an immutable snapshot of a form field's identifying
// attributes, decoupled from any live browser handle. Descriptors are
// collected once per page and then processed by the pure classification
// and mapping engines.
type DomFieldDescriptor struct {
	Name        string             `json:"name,omitempty"`
	ID          string             `json:"id,omitempty"`
	Placeholder string             `json:"placeholder,omitempty"`
	Type        string             `json:"type,omitempty"`
	Label       string             `json:"label,omitempty"`
	TagName     string             `json:"tag_name"`
	Options     []OptionDescriptor `json:"options,omitempty"`
	// Selector re-addresses the live element when a fill is applied.
	// It is advisory; classification never depends on it.
	Selector string `json:"selector,omitempty"`
}

// OptionDescriptor is one choice of an enumerated control.
type OptionDescriptor struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// Enumerated reports whether the field is an enumerated control.
func (d DomFieldDescriptor) Enumerated() bool {
	return len(d.Options) > 0
}

// Multiline reports whether the field accepts multi-line input.
func (d DomFieldDescriptor) Multiline() bool {
	return d.TagName == "textarea"
}

// Category is the semantic classification assigned to a form field.
type Category string

// Field categories in classifier priority order. CategoryNone is the
// explicit "no confident match" state and must never be force-filled.
const (
	CategoryFirstName  Category = "firstName"
	CategoryLastName   Category = "lastName"
	CategoryFullName   Category = "fullName"
	CategoryEmail      Category = "email"
	CategoryPhone      Category = "phone"
	CategoryAddress    Category = "address"
	CategoryCity       Category = "city"
	CategoryState      Category = "state"
	CategoryZip        Category = "zip"
	CategoryEducation  Category = "education"
	CategoryExperience Category = "experience"
	CategorySkills     Category = "skills"
	CategoryNone       Category = "none"
)

// FieldClassification pairs a descriptor with its assigned category.
type FieldClassification struct {
	Descriptor DomFieldDescriptor `json:"descriptor"`
	Category   Category           `json:"category"`
}
