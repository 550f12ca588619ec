package validation

import (
	"fmt"
	"strings"

	"github.com/kjanat/restpki/client/pkg/api"
)

// ModelError reports a malformed finding inside a results payload.
type ModelError struct {
	Path    string
	Message string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Item is a single validation finding.
type Item struct {
	itemType string
	message  string
	detail   string
	inner    *Results
}

func newItem(model *api.ValidationItemModel, path string) (*Item, error) {
	if model.Message == "" && model.Type == "" {
		return nil, &ModelError{Path: path, Message: "item has neither type nor message"}
	}

	item := &Item{
		itemType: model.Type,
		message:  model.Message,
	}
	if model.Detail != nil {
		item.detail = *model.Detail
	}
	if model.InnerValidationResults != nil {
		inner, err := fromModel(model.InnerValidationResults, path+".innerValidationResults")
		if err != nil {
			return nil, err
		}
		item.inner = inner
	}
	return item, nil
}

// Type is the service's identifier for the kind of check.
func (i *Item) Type() string { return i.itemType }

// Message is the human-readable description of the finding.
func (i *Item) Message() string { return i.message }

// Detail is optional extra information, empty when absent.
func (i *Item) Detail() string { return i.detail }

// InnerResults returns the nested findings, or nil.
func (i *Item) InnerResults() *Results { return i.inner }

// Format renders "message (detail)" followed by any nested results at
// indent+1.
func (i *Item) Format(indent int) string {
	var b strings.Builder
	b.WriteString(i.message)
	if i.detail != "" {
		fmt.Fprintf(&b, " (%s)", i.detail)
	}
	if i.inner != nil {
		b.WriteByte('\n')
		b.WriteString(i.inner.Format(indent + 1))
	}
	return b.String()
}

func (i *Item) String() string { return i.Format(0) }
