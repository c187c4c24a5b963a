package forms

import (
	"testing"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name       string
		descriptor types.DomFieldDescriptor
		expected   types.Category
	}{
		{
			name:       "First name by name attribute",
			descriptor: types.DomFieldDescriptor{Name: "first_name", TagName: "input"},
			expected:   types.CategoryFirstName,
		},
		{
			name:       "Last name by label",
			descriptor: types.DomFieldDescriptor{Label: "Last Name", TagName: "input"},
			expected:   types.CategoryLastName,
		},
		{
			name:       "Full name without sub-keyword",
			descriptor: types.DomFieldDescriptor{Placeholder: "Your name", TagName: "input"},
			expected:   types.CategoryFullName,
		},
		{
			name:       "Name predicate precedes email predicate",
			descriptor: types.DomFieldDescriptor{Name: "first_name_email", TagName: "input"},
			expected:   types.CategoryFirstName,
		},
		{
			name:       "Email by type",
			descriptor: types.DomFieldDescriptor{Name: "contact", Type: "email", TagName: "input"},
			expected:   types.CategoryEmail,
		},
		{
			name:       "Phone by type tel",
			descriptor: types.DomFieldDescriptor{Name: "contact_number", Type: "tel", TagName: "input"},
			expected:   types.CategoryPhone,
		},
		{
			name:       "Address by id",
			descriptor: types.DomFieldDescriptor{ID: "street-address", TagName: "input"},
			expected:   types.CategoryAddress,
		},
		{
			name:       "Zip by postal keyword",
			descriptor: types.DomFieldDescriptor{Name: "postal_code", TagName: "input"},
			expected:   types.CategoryZip,
		},
		{
			name:       "Education by label",
			descriptor: types.DomFieldDescriptor{Label: "Education history", TagName: "textarea"},
			expected:   types.CategoryEducation,
		},
		{
			name:       "Experience by placeholder",
			descriptor: types.DomFieldDescriptor{Placeholder: "Describe your work history", TagName: "textarea"},
			expected:   types.CategoryExperience,
		},
		{
			name:       "Skills by name",
			descriptor: types.DomFieldDescriptor{Name: "skills", TagName: "input"},
			expected:   types.CategorySkills,
		},
		{
			name:       "No predicate match yields none",
			descriptor: types.DomFieldDescriptor{Name: "favorite_color", TagName: "input"},
			expected:   types.CategoryNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := classifier.Classify(tt.descriptor)
			assert.Equal(t, tt.expected, fc.Category)
			assert.Equal(t, tt.descriptor, fc.Descriptor)
		})
	}
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	classifier := NewClassifier()
	descriptors := []types.DomFieldDescriptor{
		{Name: "email", TagName: "input"},
		{Name: "mystery", TagName: "input"},
		{Name: "city", TagName: "input"},
	}

	classifications := classifier.ClassifyAll(descriptors)

	assert.Equal(t, types.CategoryEmail, classifications[0].Category)
	assert.Equal(t, types.CategoryNone, classifications[1].Category)
	assert.Equal(t, types.CategoryCity, classifications[2].Category)
}
