package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const TitleMaxLength = 100

// Formatos aceitos para datas, com "T" ou espaço entre data e hora e segundos
// opcionais; os sem fuso são interpretados como UTC. Frações de segundo são
// aceitas pelo time.Parse logo após os segundos.
var timeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const msgTimeFormat = "Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss[.uuuuuu]][+HH:MM|-HH:MM|Z]."

// ParseError indica um corpo de requisição que não é um objeto JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "JSON parse error - " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Payload guarda os campos crus de um objeto JSON, para que cada entidade
// valide os seus campos individualmente e reporte erros por campo.
type Payload map[string]json.RawMessage

// DecodePayload lê um objeto JSON. Um corpo vazio equivale a {}.
func DecodePayload(r io.Reader) (Payload, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return Payload{}, nil
	}

	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ParseError{Err: fmt.Errorf("expected a JSON object, received %s", typeErr.Value)}
		}
		return nil, &ParseError{Err: err}
	}
	if p == nil {
		return nil, &ParseError{Err: errors.New("expected a JSON object, received null")}
	}
	return p, nil
}

func (p Payload) Has(name string) bool {
	_, ok := p[name]
	return ok
}

func (p Payload) isNull(name string) bool {
	return bytes.Equal(bytes.TrimSpace(p[name]), []byte("null"))
}

// lookup trata ausência e null de forma comum a todos os tipos de campo.
// Devolve false quando não há valor a interpretar.
func (p Payload) lookup(name string, errs ValidationErrors, required, nullable bool) bool {
	if !p.Has(name) {
		if required {
			errs.Add(name, msgRequired)
		}
		return false
	}
	if p.isNull(name) {
		if !nullable {
			errs.Add(name, msgNull)
		}
		return false
	}
	return true
}

func (p Payload) String(name string, errs ValidationErrors, required, allowBlank bool, maxLength int) *string {
	if !p.lookup(name, errs, required, false) {
		return nil
	}
	var s string
	if err := json.Unmarshal(p[name], &s); err != nil {
		errs.Add(name, "Not a valid string.")
		return nil
	}
	s = strings.TrimSpace(s)
	if !allowBlank && s == "" {
		errs.Add(name, msgBlank)
		return nil
	}
	if maxLength > 0 && utf8.RuneCountInString(s) > maxLength {
		errs.Add(name, fmt.Sprintf("Ensure this field has no more than %d characters.", maxLength))
		return nil
	}
	return &s
}

// Int64 lê uma chave primária, aceitando números inteiros ou strings numéricas.
func (p Payload) Int64(name string, errs ValidationErrors, required bool) *int64 {
	if !p.lookup(name, errs, required, false) {
		return nil
	}
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(p[name]))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		errs.Add(name, "Invalid value.")
		return nil
	}

	var raw string
	switch t := v.(type) {
	case json.Number:
		raw = t.String()
	case string:
		raw = t
	default:
		errs.Add(name, fmt.Sprintf("Incorrect type. Expected pk value, received %s.", jsonKind(v)))
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs.Add(name, fmt.Sprintf("Incorrect type. Expected pk value, received %s.", jsonKind(v)))
		return nil
	}
	return &id
}

// Time devolve o valor e se o campo estava presente no payload, para que
// null em um campo anulável possa limpar o valor guardado.
func (p Payload) Time(name string, errs ValidationErrors, required, nullable bool) (*time.Time, bool) {
	if !p.lookup(name, errs, required, nullable) {
		return nil, p.Has(name) && nullable && p.isNull(name)
	}
	var s string
	if err := json.Unmarshal(p[name], &s); err != nil {
		errs.Add(name, msgTimeFormat)
		return nil, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, true
		}
	}
	errs.Add(name, msgTimeFormat)
	return nil, false
}

func (p Payload) title(errs ValidationErrors, partial bool) *string {
	return p.String("title", errs, !partial, false, TitleMaxLength)
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case json.Number:
		return "float"
	case string:
		return "str"
	case bool:
		return "bool"
	case []interface{}:
		return "list"
	case map[string]interface{}:
		return "dict"
	}
	return "null"
}
