// FILE: typeconf/decode.go
package typeconf

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Decode populates target, a non-nil pointer to a struct or map, from the
// resolved values. Struct fields are matched through the `typeconf` tag,
// falling back to the field name. Conversion is weakly typed, so an int64
// value fills a plain int field and a comma-separated string fills a slice.
func (r *Resolved) Decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "typeconf",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(r.values); err != nil {
		return fmt.Errorf("failed to decode resolved options into %T: %w", target, err)
	}

	return nil
}
