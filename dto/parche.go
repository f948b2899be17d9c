package dto

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "magicvilla/errors"
)

// OperacionParche es una instrucción individual de un documento parche,
// con el formato op/path/value de JSON Patch.
type OperacionParche struct {
	Op    string      `json:"op" binding:"required"`
	Path  string      `json:"path" binding:"required"`
	Value interface{} `json:"value"`
}

// DocumentoParche es la lista ordenada de instrucciones que se aplica de
// forma atómica sobre un DTO de actualización.
type DocumentoParche []OperacionParche

// AplicarA aplica el documento sobre el DTO apuntado por destino. Las rutas
// se resuelven contra las etiquetas json del struct. Si alguna instrucción
// no resuelve su ruta, usa una operación desconocida o toca una ruta
// protegida, ninguna instrucción queda aplicada.
func (d DocumentoParche) AplicarA(destino interface{}, protegidas ...string) error {
	v := reflect.ValueOf(destino)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return apperrors.NewAppError(apperrors.ErrCodeParcheRuta, "el destino del parche debe ser un puntero a struct", nil)
	}

	elem := v.Elem()

	// Se trabaja sobre una copia para garantizar todo-o-nada.
	copia := reflect.New(elem.Type()).Elem()
	copia.Set(elem)

	for _, op := range d {
		switch op.Op {
		case "replace", "add":
			if err := asignarCampo(copia, op.Path, op.Value, protegidas); err != nil {
				return err
			}
		case "remove":
			if err := asignarCampo(copia, op.Path, nil, protegidas); err != nil {
				return err
			}
		default:
			return apperrors.NewAppError(apperrors.ErrCodeParcheOperacion,
				fmt.Sprintf("operación de parche no soportada: %q", op.Op), nil)
		}
	}

	elem.Set(copia)
	return nil
}

func asignarCampo(elem reflect.Value, ruta string, valor interface{}, protegidas []string) error {
	for _, p := range protegidas {
		if strings.EqualFold(ruta, p) {
			return apperrors.NewAppError(apperrors.ErrCodeParcheRuta,
				fmt.Sprintf("la ruta %q no es modificable", ruta), nil)
		}
	}

	nombre := strings.TrimPrefix(ruta, "/")
	campo, ok := buscarPorTag(elem, nombre)
	if !ok {
		return apperrors.NewAppError(apperrors.ErrCodeParcheRuta,
			fmt.Sprintf("la ruta %q no existe en el DTO", ruta), nil)
	}

	// remove deja el campo en su valor cero
	if valor == nil {
		campo.Set(reflect.Zero(campo.Type()))
		return nil
	}

	return convertirYAsignar(campo, valor, ruta)
}

// buscarPorTag localiza el campo cuyo nombre de etiqueta json coincide con
// el segmento de la ruta (comparación sin distinguir mayúsculas).
func buscarPorTag(elem reflect.Value, nombre string) (reflect.Value, bool) {
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag == "" {
			tag = t.Field(i).Name
		}
		if strings.EqualFold(tag, nombre) {
			return elem.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func convertirYAsignar(campo reflect.Value, valor interface{}, ruta string) error {
	val := reflect.ValueOf(valor)

	// Los números llegan del JSON como float64; se convierten al tipo del campo.
	switch campo.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := valor.(float64)
		if !ok || f != float64(int64(f)) {
			return errValorInvalido(ruta, valor)
		}
		campo.SetInt(int64(f))
	case reflect.Float32, reflect.Float64:
		f, ok := valor.(float64)
		if !ok {
			return errValorInvalido(ruta, valor)
		}
		campo.SetFloat(f)
	case reflect.String:
		s, ok := valor.(string)
		if !ok {
			return errValorInvalido(ruta, valor)
		}
		campo.SetString(s)
	case reflect.Bool:
		b, ok := valor.(bool)
		if !ok {
			return errValorInvalido(ruta, valor)
		}
		campo.SetBool(b)
	default:
		if !val.IsValid() || !val.Type().AssignableTo(campo.Type()) {
			return errValorInvalido(ruta, valor)
		}
		campo.Set(val)
	}
	return nil
}

func errValorInvalido(ruta string, valor interface{}) error {
	return apperrors.NewAppError(apperrors.ErrCodeFormatoInvalido,
		fmt.Sprintf("el valor %v no es válido para la ruta %q", valor, ruta), nil)
}
