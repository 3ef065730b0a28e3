package gql

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-api/internal/domain"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalHook acepta números o strings donde el DTO espera decimal.Decimal.
func decimalHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != decimalType {
		return data, nil
	}
	if d, ok := toDecimal(data); ok {
		return d, nil
	}
	return data, nil
}

// decodeInput copia el argumento "input" de GraphQL al DTO, usando sus etiquetas json.
func decodeInput(args map[string]interface{}, out interface{}) error {
	raw, ok := args["input"]
	if !ok || raw == nil {
		return domain.NewError(domain.ErrInvalidInput, "input es obligatorio")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		DecodeHook: decimalHook,
		Result:     out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return domain.NewError(domain.ErrInvalidInput, fmt.Sprintf("input inválido: %v", err))
	}
	return nil
}
