// Package validation models the validation results returned by the REST PKI
// service when it checks a certificate or a signature.
//
// Results form a tree: each [Results] holds three ordered lists of [Item]
// (errors, warnings and passed checks), and each Item may own a nested
// Results describing the sub-checks behind it.
//
//	results, err := validation.FromModel(resp.ValidationResults)
//	if err != nil {
//	    return err
//	}
//	if !results.IsValid() {
//	    fmt.Println(results)
//	}
package validation
