package extattr

import (
	"fmt"
	"reflect"
	"time"

	"howett.net/plist"
)

var (
	timeType      = reflect.TypeOf(time.Time{})
	marshalerType = reflect.TypeOf((*plist.Marshaler)(nil)).Elem()
)

// Encodable reports whether v can be written as a property list: strings,
// booleans, numbers, dates, data, and slices, string-keyed maps and structs
// built from them. nil and cyclic values are not encodable.
func Encodable(v any) bool {
	if v == nil {
		return false
	}
	return encodable(reflect.ValueOf(v), map[visit]bool{})
}

// visit identifies a reference value on the current walk path.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

func encodable(v reflect.Value, path map[visit]bool) bool {
	if !v.IsValid() {
		return false
	}
	if v.Type().Implements(marshalerType) {
		return true
	}
	if v.Type() == timeType {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if !v.IsNil() && v.Pointer() != 0 {
			key := visit{ptr: v.Pointer(), typ: v.Type()}
			if v.Kind() == reflect.Slice {
				key.len = v.Len()
			}
			if path[key] {
				return false
			}
			path[key] = true
			defer delete(path, key)
		}
	}

	switch v.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return encodable(v.Elem(), path)
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return true
		}
		for i := 0; i < v.Len(); i++ {
			if !encodable(v.Index(i), path) {
				return false
			}
		}
		return true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return false
		}
		iter := v.MapRange()
		for iter.Next() {
			if !encodable(iter.Value(), path) {
				return false
			}
		}
		return true
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get("plist") == "-" {
				continue
			}
			fv := v.Field(i)
			if (fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface) && fv.IsNil() {
				// nil members are left out of the dictionary
				continue
			}
			if !encodable(fv, path) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// MarshalStructured encodes v as a binary property list.
func MarshalStructured(v any) ([]byte, error) {
	if !Encodable(v) {
		return nil, fmt.Errorf("%w: %T", ErrSerializationInvalid, v)
	}
	data, err := plist.Marshal(v, plist.BinaryFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSerializationInvalid, err.Error())
	}
	return data, nil
}

// UnmarshalStructured decodes a property list into a T. Malformed data and
// values of another shape both fail with ErrSerializationCorrupt.
func UnmarshalStructured[T any](data []byte) (T, error) {
	var v T
	if _, err := plist.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrSerializationCorrupt, err.Error())
	}
	return v, nil
}

// GetStructured reads name and decodes it as a property list of type T.
// ok is false when the attribute does not exist.
func GetStructured[T any](s *Store, name string) (value T, ok bool, err error) {
	data, ok, err := s.Get(name)
	if err != nil || !ok {
		return value, false, err
	}
	value, err = UnmarshalStructured[T](data)
	if err != nil {
		return value, false, fmt.Errorf("%s: %w", name, err)
	}
	return value, true, nil
}

// SetStructured encodes value as a binary property list and stores it under
// name. Values that are not Encodable fail with ErrSerializationInvalid
// before anything is written.
func SetStructured(s *Store, name string, value any) error {
	return setStructured(s, name, value, nil)
}

// SetStructuredWithFlags is SetStructured with flags encoded into the name.
func SetStructuredWithFlags(s *Store, name string, value any, flags Flags) error {
	return setStructured(s, name, value, &flags)
}

// WriteStructured is SetStructured with optional flags, for Codec
// implementations.
func WriteStructured(s *Store, name string, value any, flags *Flags) error {
	return setStructured(s, name, value, flags)
}

func setStructured(s *Store, name string, value any, flags *Flags) error {
	if err := s.checkAccessible(); err != nil {
		return err
	}
	data, err := MarshalStructured(value)
	if err != nil {
		return err
	}
	return s.set(name, data, flags)
}
