// Package forms classifies form-field descriptor snapshots into semantic
// categories and maps a Profile onto classified fields.
package forms

import (
	"strings"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// classifierRule pairs a category with its predicate. Rules are evaluated
// in slice order and the first match wins, so the priority is data, not
// control flow, and tests can assert on the order itself.
type classifierRule struct {
	category types.Category
	match    func(d types.DomFieldDescriptor) bool
}

// Classifier assigns a semantic category to opaque form-field descriptors
// using a fixed first-match-wins predicate chain.
type Classifier struct {
	rules []classifierRule
}

// NewClassifier builds the default classifier chain. The order is part of
// the contract: a field whose descriptor mentions both "name" and "email"
// classifies as a name field because the name predicate is evaluated first.
func NewClassifier() *Classifier {
	return &Classifier{rules: []classifierRule{
		{types.CategoryFirstName, func(d types.DomFieldDescriptor) bool {
			return containsKeyword(d, "name") && containsKeyword(d, "first")
		}},
		{types.CategoryLastName, func(d types.DomFieldDescriptor) bool {
			return containsKeyword(d, "name") && containsKeyword(d, "last")
		}},
		{types.CategoryFullName, func(d types.DomFieldDescriptor) bool {
			return containsKeyword(d, "name")
		}},
		{types.CategoryEmail, func(d types.DomFieldDescriptor) bool {
			return d.Type == "email" || containsKeyword(d, "email")
		}},
		{types.CategoryPhone, func(d types.DomFieldDescriptor) bool {
			return d.Type == "tel" || containsKeyword(d, "phone")
		}},
		{types.CategoryAddress, func(d types.DomFieldDescriptor) bool {
			return containsKeyword(d, "address")
		}},
		{types.CategoryCity, func(d types.DomFieldDescriptor) bool {
			return containsKeyword(d, "city")
		}},
		{types.CategoryState, func(d types.DomFieldDescriptor) bool {
			return containsKeyword(d, "state")
		}},
		{types.CategoryZip, func(d types.DomFieldDescriptor) bool {
			return containsKeyword(d, "zip") || containsKeyword(d, "postal")
		}},
		{types.CategoryEducation, func(d types.DomFieldDescriptor) bool {
			return containsKeyword(d, "education") || containsKeyword(d, "school") ||
				containsKeyword(d, "university") || containsKeyword(d, "degree")
		}},
		{types.CategoryExperience, func(d types.DomFieldDescriptor) bool {
			return containsKeyword(d, "experience") || containsKeyword(d, "employment") ||
				containsKeyword(d, "work history")
		}},
		{types.CategorySkills, func(d types.DomFieldDescriptor) bool {
			return containsKeyword(d, "skills")
		}},
	}}
}

// Classify assigns a category to a single descriptor. No predicate match
// yields CategoryNone, which is never filled.
func (c *Classifier) Classify(d types.DomFieldDescriptor) types.FieldClassification {
	for _, rule := range c.rules {
		if rule.match(d) {
			return types.FieldClassification{Descriptor: d, Category: rule.category}
		}
	}
	return types.FieldClassification{Descriptor: d, Category: types.CategoryNone}
}

// ClassifyAll classifies an ordered sequence of descriptors, preserving
// input order.
func (c *Classifier) ClassifyAll(descriptors []types.DomFieldDescriptor) []types.FieldClassification {
	classifications := make([]types.FieldClassification, 0, len(descriptors))
	for _, d := range descriptors {
		classifications = append(classifications, c.Classify(d))
	}
	return classifications
}

// containsKeyword tests keyword containment across the four descriptor
// text sources: name, id, placeholder and associated label.
func containsKeyword(d types.DomFieldDescriptor, keyword string) bool {
	for _, source := range []string{d.Name, d.ID, d.Placeholder, d.Label} {
		if source != "" && strings.Contains(strings.ToLower(source), keyword) {
			return true
		}
	}
	return false
}
