// Package validation valida structs de entrada con go-playground/validator y
// devuelve errores por campo, ordenados, independientes del transporte HTTP.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError un error de validación de un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors lista ordenada de errores de campo. Implementa error; el mensaje
// es el del primer campo que falló (first-violation-wins para mostrar).
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validación fallida"
	}
	return e[0].Message
}

// First devuelve el primer mensaje, o cadena vacía si no hay errores.
func (e Errors) First() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Message
}

// Map agrupa los mensajes por campo (forma {campo: [mensajes]} del API).
func (e Errors) Map() map[string][]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e))
	for _, fe := range e {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// New construye un Errors de un solo campo (para reglas fuera de tags,
// como la unicidad del NIT).
func New(field, message string) Errors {
	return Errors{{Field: field, Message: message}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con el nombre del tag json, no el del struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct valida un struct según sus tags `validate`. Devuelve nil si es válido.
func Struct(s interface{}) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{{Field: "payload", Message: "entrada inválida"}}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio.", fe.Field())
	case "email":
		return fmt.Sprintf("El campo %s debe ser un correo válido.", fe.Field())
	case "max":
		return fmt.Sprintf("El campo %s no debe superar %s caracteres.", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s caracteres.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s.", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("El campo %s no es válido.", fe.Field())
	}
}
