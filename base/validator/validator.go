package validator

import (
	"reflect"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// DefaultPrefix is the bech32 human readable part of xion accounts and contracts
const DefaultPrefix = "xion"

// IsValidAddress reports whether address is a bech32 address with the given prefix
// holding a 20 byte account or a 32 byte contract key.
func IsValidAddress(address, prefix string) bool {
	if strings.ToLower(address) != address && strings.ToUpper(address) != address {
		return false
	}
	hrp, data, err := bech32.Decode(address)
	if err != nil || hrp != strings.ToLower(prefix) {
		return false
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return false
	}
	return len(raw) == 20 || len(raw) == 32
}

// New returns a validator with the "bech32" tag registered; "bech32=osmo" overrides the prefix.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("bech32", func(fl validator.FieldLevel) bool {
		prefix := fl.Param()
		if prefix == "" {
			prefix = DefaultPrefix
		}
		return IsValidAddress(fl.Field().String(), prefix)
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
