package manifest

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/roach88/realmgen/internal/ir"
)

// LoadCUE reads and parses a CUE realm manifest. Uses the CUE SDK's Go
// API directly (not CLI subprocess).
//
// The manifest carries a single top-level realm struct:
//
//	realm: {
//	    component_under_test: "echo_server"
//	    components: [{name: "logger", mock: true}]
//	    protocols: [{name: "fuchsia.logger.Log", source: "logger", targets: ["self"]}]
//	    tests: ["fuchsia.logger.Log"]
//	}
func LoadCUE(path string) (*ir.Realm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	realmVal := v.LookupPath(cue.ParsePath("realm"))
	if !realmVal.Exists() {
		return nil, &ManifestError{
			Field:   "realm",
			Message: "top-level realm struct is required",
			Pos:     v.Pos(),
		}
	}
	return parseRealm(realmVal)
}

// parseRealm extracts a Realm from a CUE value, preserving declaration
// order of every list.
func parseRealm(v cue.Value) (*ir.Realm, error) {
	realm := &ir.Realm{}

	cutVal := v.LookupPath(cue.ParsePath("component_under_test"))
	if !cutVal.Exists() {
		return nil, &ManifestError{
			Field:   "component_under_test",
			Message: "component_under_test is required",
			Pos:     v.Pos(),
		}
	}
	cut, err := cutVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	realm.ComponentUnderTest = cut

	realm.Imports, err = parseStringList(v, "imports")
	if err != nil {
		return nil, err
	}

	if err := parseComponents(v, realm); err != nil {
		return nil, err
	}
	if err := parseRoutes(v, realm); err != nil {
		return nil, err
	}

	realm.Tests, err = parseStringList(v, "tests")
	if err != nil {
		return nil, err
	}

	return realm, nil
}

func parseComponents(v cue.Value, realm *ir.Realm) error {
	componentsVal := v.LookupPath(cue.ParsePath("components"))
	if !componentsVal.Exists() {
		return nil
	}

	iter, err := componentsVal.List()
	if err != nil {
		return formatCUEError(err)
	}
	for i := 0; iter.Next(); i++ {
		cv := iter.Value()

		name, err := requiredString(cv, "name", fmt.Sprintf("components[%d].name", i))
		if err != nil {
			return err
		}
		component := ir.Component{Name: name}

		urlVal := cv.LookupPath(cue.ParsePath("url"))
		if urlVal.Exists() {
			if component.URL, err = urlVal.String(); err != nil {
				return formatCUEError(err)
			}
		}

		mockVal := cv.LookupPath(cue.ParsePath("mock"))
		if mockVal.Exists() {
			if component.Mock, err = mockVal.Bool(); err != nil {
				return formatCUEError(err)
			}
		}

		realm.Components = append(realm.Components, component)
	}
	return nil
}

func parseRoutes(v cue.Value, realm *ir.Realm) error {
	protocolsVal := v.LookupPath(cue.ParsePath("protocols"))
	if protocolsVal.Exists() {
		iter, err := protocolsVal.List()
		if err != nil {
			return formatCUEError(err)
		}
		for i := 0; iter.Next(); i++ {
			rv := iter.Value()
			field := fmt.Sprintf("protocols[%d]", i)

			name, err := requiredString(rv, "name", field+".name")
			if err != nil {
				return err
			}
			source, err := requiredString(rv, "source", field+".source")
			if err != nil {
				return err
			}
			targets, err := parseStringList(rv, "targets")
			if err != nil {
				return err
			}
			realm.Protocols = append(realm.Protocols, ir.ProtocolRoute{
				Name:    name,
				Source:  source,
				Targets: targets,
			})
		}
	}

	directoriesVal := v.LookupPath(cue.ParsePath("directories"))
	if directoriesVal.Exists() {
		routes, err := parsePathRoutes(directoriesVal, "directories")
		if err != nil {
			return err
		}
		for _, r := range routes {
			realm.Directories = append(realm.Directories, ir.DirectoryRoute(r))
		}
	}

	storageVal := v.LookupPath(cue.ParsePath("storage"))
	if storageVal.Exists() {
		routes, err := parsePathRoutes(storageVal, "storage")
		if err != nil {
			return err
		}
		for _, r := range routes {
			realm.Storage = append(realm.Storage, ir.StorageRoute(r))
		}
	}

	return nil
}

// pathRoute is the common shape of directory and storage entries.
type pathRoute struct {
	Name    string
	Path    string
	Targets []string
}

func parsePathRoutes(v cue.Value, field string) ([]pathRoute, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var routes []pathRoute
	for i := 0; iter.Next(); i++ {
		rv := iter.Value()
		entry := fmt.Sprintf("%s[%d]", field, i)

		name, err := requiredString(rv, "name", entry+".name")
		if err != nil {
			return nil, err
		}
		path, err := requiredString(rv, "path", entry+".path")
		if err != nil {
			return nil, err
		}
		targets, err := parseStringList(rv, "targets")
		if err != nil {
			return nil, err
		}
		routes = append(routes, pathRoute{Name: name, Path: path, Targets: targets})
	}
	return routes, nil
}

func parseStringList(v cue.Value, field string) ([]string, error) {
	listVal := v.LookupPath(cue.ParsePath(field))
	if !listVal.Exists() {
		return nil, nil
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, s)
	}
	return out, nil
}

func requiredString(v cue.Value, path, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(path))
	if !fv.Exists() {
		return "", &ManifestError{
			Field:   field,
			Message: path + " is required",
			Pos:     v.Pos(),
		}
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &ManifestError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
