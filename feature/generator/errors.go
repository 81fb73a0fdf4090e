package generator

import "errors"

// KindOf returns the kind tag of the first typed error in err's chain:
// fetch, schema, collision, duplicate_id or emit. Other errors are "internal".
func KindOf(err error) string {
	var kinded interface{ Kind() string }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return "internal"
}
