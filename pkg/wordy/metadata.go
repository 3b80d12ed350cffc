package wordy

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"
)

// Metadata is attached to an order and echoed back by Wordy.
//
// Entries are sent in key order as metanameN, with scalar values as
// metavalueN. Entries with an empty key or an empty value (nil, "", "0", 0,
// false, empty map or slice) are skipped. Maps, slices and structs are sent
// JSON encoded under the single key metavalue, without an index, so only the
// last structured entry of an order reaches Wordy.
type Metadata map[string]any

// encode adds the metadata to params and returns how many structured values
// were overwritten by a later one. Structured values that cannot be JSON
// encoded are skipped with a warning.
func (m Metadata) encode(params Params, logger hclog.Logger) int {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	idx, structured := 0, 0
	for _, k := range keys {
		v := m[k]
		if k == "" || isEmptyValue(v) {
			continue
		}

		if isStructured(v) {
			b, err := json.Marshal(v)
			if err != nil {
				logger.Warn("skipping metadata value that cannot be encoded", "key", k, "error", err)
				continue
			}
			idx++
			params["metaname"+strconv.Itoa(idx)] = k
			params["metavalue"] = string(b)
			structured++
			continue
		}

		idx++
		n := strconv.Itoa(idx)
		params["metaname"+n] = k
		params["metavalue"+n] = formatScalar(v)
	}

	if structured > 1 {
		return structured - 1
	}
	return 0
}

// MetadataFromStruct converts a struct into Metadata. Keys come from the
// "meta" struct tag or the field name, converted to snake_case.
func MetadataFromStruct(v any) (Metadata, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("metadata source must be a struct, got %T", v)
	}

	var raw map[string]any
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "meta",
		Result:  &raw,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata decoder: %w", err)
	}
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	out := make(Metadata, len(raw))
	for k, val := range raw {
		out[strcase.ToSnake(k)] = val
	}
	return out, nil
}

func isStructured(v any) bool {
	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmptyValue(rv.Elem().Interface())
	case reflect.String:
		return rv.String() == "" || rv.String() == "0"
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	}
	return false
}

func formatScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.String:
		return rv.String()
	}
	return fmt.Sprint(v)
}
