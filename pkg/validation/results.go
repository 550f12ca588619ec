package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kjanat/restpki/client/pkg/api"
)

// ErrNilModel is returned when a results payload is absent.
var ErrNilModel = errors.New("validation results model is nil")

// Results is an immutable set of validation findings.
type Results struct {
	errors       []*Item
	warnings     []*Item
	passedChecks []*Item
}

// FromModel converts a decoded service payload, including every nested
// level, into Results. Each level must carry all three arrays; an empty
// array is fine, a missing or null one is a ModelError.
func FromModel(model *api.ValidationResultsModel) (*Results, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	return fromModel(model, "validationResults")
}

func fromModel(model *api.ValidationResultsModel, path string) (*Results, error) {
	// Decoding leaves a slice nil only when its key is missing or null.
	switch {
	case model.Errors == nil:
		return nil, &ModelError{Path: path + ".errors", Message: "missing array"}
	case model.Warnings == nil:
		return nil, &ModelError{Path: path + ".warnings", Message: "missing array"}
	case model.PassedChecks == nil:
		return nil, &ModelError{Path: path + ".passedChecks", Message: "missing array"}
	}

	errs, err := convertItems(model.Errors, path+".errors")
	if err != nil {
		return nil, err
	}
	warnings, err := convertItems(model.Warnings, path+".warnings")
	if err != nil {
		return nil, err
	}
	passed, err := convertItems(model.PassedChecks, path+".passedChecks")
	if err != nil {
		return nil, err
	}
	return &Results{errors: errs, warnings: warnings, passedChecks: passed}, nil
}

func convertItems(models []api.ValidationItemModel, path string) ([]*Item, error) {
	items := make([]*Item, 0, len(models))
	for i := range models {
		item, err := newItem(&models[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Errors returns the failed checks.
func (r *Results) Errors() []*Item { return clone(r.errors) }

// Warnings returns the checks that passed with reservations.
func (r *Results) Warnings() []*Item { return clone(r.warnings) }

// PassedChecks returns the checks that passed.
func (r *Results) PassedChecks() []*Item { return clone(r.passedChecks) }

// IsValid reports whether no errors were found.
func (r *Results) IsValid() bool { return len(r.errors) == 0 }

// HasErrors reports whether at least one check failed.
func (r *Results) HasErrors() bool { return len(r.errors) > 0 }

// HasWarnings reports whether at least one warning was raised.
func (r *Results) HasWarnings() bool { return len(r.warnings) > 0 }

// ChecksPerformed is the total number of findings on this level.
func (r *Results) ChecksPerformed() int {
	return len(r.errors) + len(r.warnings) + len(r.passedChecks)
}

// Summary renders the one-line overview, indented by the given number of tabs.
func (r *Results) Summary(indent int) string {
	var b strings.Builder
	b.WriteString(tabs(indent))
	b.WriteString("Validation results: ")

	if r.ChecksPerformed() == 0 {
		b.WriteString("no checks performed")
		return b.String()
	}

	fmt.Fprintf(&b, "%d checks performed", r.ChecksPerformed())
	if r.HasErrors() {
		fmt.Fprintf(&b, ", %d errors", len(r.errors))
	}
	if r.HasWarnings() {
		fmt.Fprintf(&b, ", %d warnings", len(r.warnings))
	}
	if len(r.passedChecks) > 0 {
		if !r.HasErrors() && !r.HasWarnings() {
			b.WriteString(", all passed")
		} else {
			fmt.Fprintf(&b, ", %d passed", len(r.passedChecks))
		}
	}
	return b.String()
}

// Format renders the full report: the summary followed by a section for
// every non-empty category. Nested results are indented one level deeper
// than the item that owns them.
func (r *Results) Format(indent int) string {
	var b strings.Builder
	tab := tabs(indent)

	b.WriteString(r.Summary(indent))
	sections := []struct {
		title string
		items []*Item
	}{
		{"Errors", r.errors},
		{"Warnings", r.warnings},
		{"Passed checks", r.passedChecks},
	}
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s%s:\n", tab, s.title)
		writeItems(&b, s.items, indent)
	}
	return b.String()
}

// String renders the report at indentation level zero.
func (r *Results) String() string { return r.Format(0) }

func writeItems(b *strings.Builder, items []*Item, indent int) {
	tab := tabs(indent)
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(tab)
		b.WriteString("- ")
		b.WriteString(item.Format(indent))
	}
}

func tabs(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("\t", n)
}

func clone(items []*Item) []*Item {
	out := make([]*Item, len(items))
	copy(out, items)
	return out
}
