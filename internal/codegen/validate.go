package codegen

import (
	"fmt"

	"github.com/roach88/realmgen/internal/ir"
)

// ValidationError reports one consistency problem in a realm description.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRealm checks the caller obligations the builder itself leaves
// unchecked: unique component names, non-mock components carrying a URL,
// and route references resolving to a declared component. Generation does
// not require this pass; the default path trusts the caller.
func ValidateRealm(realm *ir.Realm) []ValidationError {
	var errs []ValidationError

	if realm.ComponentUnderTest == "" {
		errs = append(errs, ValidationError{
			Field:   "component_under_test",
			Message: "component under test is required",
		})
	}

	known := make(map[string]bool, len(realm.Components))
	for i, component := range realm.Components {
		field := fmt.Sprintf("components[%d]", i)
		if component.Name == "" {
			errs = append(errs, ValidationError{Field: field, Message: "component name is required"})
			continue
		}
		if known[component.Name] {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("duplicate component name %q", component.Name),
			})
		}
		known[component.Name] = true
		if !component.Mock && component.URL == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("non-mock component %q requires a url", component.Name),
			})
		}
	}

	for i, route := range realm.Protocols {
		field := fmt.Sprintf("protocols[%d]", i)
		errs = append(errs, checkRef(known, field+".source", route.Source)...)
		errs = append(errs, checkRefs(known, field, route.Targets)...)
	}
	for i, route := range realm.Directories {
		errs = append(errs, checkRefs(known, fmt.Sprintf("directories[%d]", i), route.Targets)...)
	}
	for i, route := range realm.Storage {
		errs = append(errs, checkRefs(known, fmt.Sprintf("storage[%d]", i), route.Targets)...)
	}

	return errs
}

func checkRefs(known map[string]bool, field string, targets []string) []ValidationError {
	var errs []ValidationError
	for i, target := range targets {
		errs = append(errs, checkRef(known, fmt.Sprintf("%s.targets[%d]", field, i), target)...)
	}
	return errs
}

// checkRef accepts the root/self tokens and any declared component name.
func checkRef(known map[string]bool, field, ref string) []ValidationError {
	if ref == ir.RefRoot || ref == ir.RefSelf || known[ref] {
		return nil
	}
	return []ValidationError{{
		Field:   field,
		Message: fmt.Sprintf("route references unknown component %q", ref),
	}}
}
