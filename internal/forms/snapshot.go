package forms

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// skippedInputTypes lists input types that never carry application data.
var skippedInputTypes = map[string]bool{
	"hidden": true, "submit": true, "button": true, "reset": true,
	"image": true, "file": true,
}

// SnapshotHTML parses static HTML and collects descriptor snapshots for
// every input, textarea and select. Label association uses label[for]
// first, then an ancestor <label>. This keeps classification testable
// without a live page.
func SnapshotHTML(html string) ([]types.DomFieldDescriptor, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	labels := make(map[string]string)
	doc.Find("label[for]").Each(func(_ int, sel *goquery.Selection) {
		forID, _ := sel.Attr("for")
		if forID != "" {
			labels[forID] = strings.TrimSpace(sel.Text())
		}
	})

	var descriptors []types.DomFieldDescriptor
	doc.Find("input, textarea, select").Each(func(_ int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)
		inputType, _ := sel.Attr("type")
		if tag == "input" && skippedInputTypes[strings.ToLower(inputType)] {
			return
		}

		d := types.DomFieldDescriptor{
			TagName: tag,
			Type:    strings.ToLower(inputType),
		}
		d.Name, _ = sel.Attr("name")
		d.ID, _ = sel.Attr("id")
		d.Placeholder, _ = sel.Attr("placeholder")

		if label, ok := labels[d.ID]; ok {
			d.Label = label
		} else if parent := sel.Closest("label"); parent.Length() > 0 {
			d.Label = strings.TrimSpace(parent.Text())
		}

		if tag == "select" {
			sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
				value, _ := opt.Attr("value")
				d.Options = append(d.Options, types.OptionDescriptor{
					Value: value,
					Text:  strings.TrimSpace(opt.Text()),
				})
			})
		}

		d.Selector = buildSelector(tag, d.ID, d.Name)
		descriptors = append(descriptors, d)
	})

	return descriptors, nil
}

// buildSelector derives a CSS selector that re-addresses the element for
// filling. Elements without id or name stay classifiable but cannot be
// filled.
func buildSelector(tag, id, name string) string {
	switch {
	case id != "":
		return "#" + id
	case name != "":
		return fmt.Sprintf(`%s[name=%q]`, tag, name)
	default:
		return ""
	}
}
