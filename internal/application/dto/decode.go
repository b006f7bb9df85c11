package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// DecodeBody deserializa un body JSON aceptando claves tanto en snake_case
// como en camelCase: los clientes heredados envían periodStart mientras que
// los nuevos envían period_start, y ambos deben aterrizar en el mismo campo.
// Las claves camelCase se normalizan a snake_case (recursivamente, también en
// objetos anidados y arreglos) antes del unmarshalling.
func DecodeBody(data []byte, v any) error {
	normalized, err := normalizeJSONKeys(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, v)
}

// normalizeJSONKeys reescribe todas las claves de objeto a snake_case.
// Usa json.Number para que los valores numéricos se reserialicen textualmente
// (sin pasar por float64).
func normalizeJSONKeys(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeValue(doc))
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[ToSnakeCase(k)] = normalizeValue(val)
		}
		return out
	case []any:
		for i := range t {
			t[i] = normalizeValue(t[i])
		}
		return t
	default:
		return v
	}
}

// ToSnakeCase convierte camelCase a snake_case ("periodStart" ->
// "period_start", "itemId" -> "item_id"). Las claves que ya están en
// snake_case pasan sin cambios; una racha de mayúsculas al final ("parseID")
// se mantiene como un solo segmento ("parse_id").
func ToSnakeCase(s string) string {
	if !strings.ContainsFunc(s, unicode.IsUpper) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && runes[i-1] != '_' && (prevLower || (unicode.IsUpper(runes[i-1]) && nextLower)) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
