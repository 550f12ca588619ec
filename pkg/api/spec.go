package api

//go:generate go tool oapi-codegen -config cfg.yaml openapi.yaml

import (
	"cmp"
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the embedded OpenAPI document as written.
func RawSpec() []byte {
	out := make([]byte, len(rawSpec))
	copy(out, rawSpec)
	return out
}

var loadSpecOnce = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return doc, nil
})

// GetSwagger returns the OpenAPI document describing the endpoints used by
// this package. The document is parsed once and shared; callers must not
// modify it.
func GetSwagger() (*openapi3.T, error) {
	return loadSpecOnce()
}

// Operation describes one endpoint of the embedded document.
type Operation struct {
	ID     string `json:"operationId"`
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Operations lists the endpoints of the embedded document, sorted by path.
func Operations() ([]Operation, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	var ops []Operation
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			ops = append(ops, Operation{ID: op.OperationID, Method: method, Path: path})
		}
	}
	slices.SortFunc(ops, func(a, b Operation) int {
		if c := cmp.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return cmp.Compare(a.Method, b.Method)
	})
	return ops, nil
}
