package model

import (
	"database/sql"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the validator used on the input structs above. A
// custom type func unwraps sql.NullString so omitempty/max tags apply to
// the inner string, and an invalid NullString reads as absent.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if ns, ok := field.Interface().(sql.NullString); ok {
			if ns.Valid {
				return ns.String
			}
			return nil
		}
		return nil
	}, sql.NullString{})
	return v
}
