// File: typeconf/convenience.go
package typeconf

import "fmt"

// Load parses configuration text against the built-in option catalog.
// This is the recommended entry point for most applications.
func Load(text string) (*File, error) {
	return New().Load("", text)
}

// LoadFile reads a configuration file against the built-in option catalog.
func LoadFile(path string) (*File, error) {
	return New().LoadFile(path)
}

// MustLoad is like Load but panics on error.
func MustLoad(text string) *File {
	file, err := Load(text)
	if err != nil {
		panic(fmt.Sprintf("configuration load failed: %v", err))
	}
	return file
}

// Resolve parses text and resolves one module path in a single call, for
// callers that do not need to keep the file around.
func Resolve(text, modulePath string) (*Resolved, error) {
	file, err := Load(text)
	if err != nil {
		return nil, err
	}
	return file.Resolve(modulePath), nil
}

// Check parses text and reports every problem found without producing a
// file. A clean parse returns no issues and the advisories recorded while
// validating, such as uses of deprecated options.
func Check(text string) ([]*Error, []Advisory) {
	file, err := Load(text)
	if err != nil {
		issues := Issues(err)
		if len(issues) == 0 {
			// Scanner failures, such as a line over the size limit, arrive
			// bare rather than as taxonomy errors.
			issues = []*Error{{Err: ErrMalformedLine, Detail: err.Error()}}
		}
		return issues, nil
	}
	return nil, file.Advisories()
}
