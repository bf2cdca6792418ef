package inspect

import "reflect"

type visit struct {
	typ reflect.Type
	ptr uintptr
}

// hasReferenceCycle reports whether v reaches one of its own maps, slices or
// pointers again while descending.
func hasReferenceCycle(v any) bool {
	return walkCycle(reflect.ValueOf(v), make(map[visit]struct{}))
}

func walkCycle(v reflect.Value, onPath map[visit]struct{}) bool {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return false
		}
		return walkCycle(v.Elem(), onPath)
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if v.IsNil() || (v.Kind() != reflect.Ptr && v.Len() == 0) || !elemMayReference(v.Type()) {
			return false
		}
		key := visit{typ: v.Type(), ptr: v.Pointer()}
		if _, seen := onPath[key]; seen {
			return true
		}
		onPath[key] = struct{}{}
		defer delete(onPath, key)

		switch v.Kind() {
		case reflect.Ptr:
			return walkCycle(v.Elem(), onPath)
		case reflect.Map:
			iter := v.MapRange()
			for iter.Next() {
				if walkCycle(iter.Key(), onPath) || walkCycle(iter.Value(), onPath) {
					return true
				}
			}
		default:
			for i := 0; i < v.Len(); i++ {
				if walkCycle(v.Index(i), onPath) {
					return true
				}
			}
		}
	case reflect.Array:
		if !elemMayReference(v.Type()) {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if walkCycle(v.Index(i), onPath) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if walkCycle(v.Field(i), onPath) {
				return true
			}
		}
	}
	return false
}

// mayReference reports whether values of t can hold a map, slice, pointer or
// interface somewhere below them.
func mayReference(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return true
	case reflect.Array:
		return mayReference(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if mayReference(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

func elemMayReference(t reflect.Type) bool {
	if t.Kind() == reflect.Map && mayReference(t.Key()) {
		return true
	}
	return mayReference(t.Elem())
}
