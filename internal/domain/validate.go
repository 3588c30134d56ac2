package domain

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var decimal2RE = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

var (
	vOnce sync.Once
	vInst *validator.Validate
)

// Validator 与 gin 绑定共用同一套规则（tag 名为 binding）
func Validator() *validator.Validate {
	vOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.SetTagName("binding")
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
		_ = v.RegisterValidation("decimal2", func(fl validator.FieldLevel) bool {
			return decimal2RE.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(DateLayout, fl.Field().String())
			return err == nil
		})
		// 按字节计长度：bcrypt 只接受 72 字节以内的口令
		_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			return err == nil && len(fl.Field().String()) <= n
		})
		vInst = v
	})
	return vInst
}

// Validate 校验结构体，失败时返回 *ValidationError
func Validate(obj any) error {
	err := Validator().Struct(obj)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return &ValidationError{Fields: []FieldError{{Field: "body", Rule: "invalid", Message: err.Error()}}}
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(ves))}
	for _, fe := range ves {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}
	return out
}

// fieldPath 去掉顶层结构体名：NewPayment.amount -> amount
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "maxbytes":
		return "must be at most " + fe.Param() + " bytes"
	case "decimal2":
		return "must be a decimal with at most 2 fraction digits"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	}
	return "failed on " + fe.Tag()
}

// GinValidator 适配 gin 的 binding.StructValidator
type GinValidator struct{}

func (GinValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return Validate(rv.Interface())
}

func (GinValidator) Engine() any { return Validator() }
