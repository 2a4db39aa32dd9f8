package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/catalog"
)

// SetupValidator configures gin's validator: error messages use JSON
// field names and the catalog inputs get their rarity tag.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("rarity", func(fl validator.FieldLevel) bool {
		return catalog.Rarity(fl.Field().String()).Valid()
	})
}
