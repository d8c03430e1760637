package translations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
)

// Indent is the indentation used when writing locale files.
const Indent = "    "

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode parses a JSON object of string values, keeping key order.
// Duplicate keys keep their first position and their last value.
func Decode(data []byte) (*Map, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, fmt.Errorf("empty document")
	}
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, found %s", describe(tok))
	}

	m := New(0)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, found %s", describe(tok))
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		value, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("value for key %q must be a string, found %s", key, describe(tok))
		}
		m.Set(key, value)
	}

	// closing brace
	if _, err = dec.Token(); err != nil {
		return nil, err
	}
	if _, err = dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected data after the top-level object")
	}
	return m, nil
}

// DecodeLenient is Decode after stripping comments and trailing commas.
func DecodeLenient(data []byte) (*Map, error) {
	return Decode(jsonc.ToJSON(bytes.TrimPrefix(data, utf8BOM)))
}

// Encode renders m the way locale files are written: one pair per line,
// four-space indentation, no trailing newline, "{}" when empty.
func Encode(m *Map) ([]byte, error) {
	if m.Len() == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	i := 0
	for k, v := range m.All() {
		buf.WriteString(Indent)
		if err := writeString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteString(": ")
		if err := writeString(&buf, v); err != nil {
			return nil, err
		}
		if i < m.Len()-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		i++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	return Encode(m)
}

// UnmarshalJSON implements json.Unmarshaler with the same rules as Decode.
func (m *Map) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

// writeString writes s as a JSON string without HTML escaping. Line and
// paragraph separators are written raw, the way JavaScript tooling does.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(unescapeSeparators(bytes.TrimSuffix(tmp.Bytes(), []byte("\n"))))
	return nil
}

// unescapeSeparators replaces the \u2028 and \u2029 escapes of an encoded
// JSON string with the characters themselves. Other escapes are copied
// whole, so an escaped backslash followed by "u2028" is left alone.
func unescapeSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 == len(b) {
			out = append(out, b[i])
			continue
		}
		if rest := b[i+1:]; bytes.HasPrefix(rest, []byte("u2028")) || bytes.HasPrefix(rest, []byte("u2029")) {
			if rest[4] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

func describe(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return "an object"
		case '[':
			return "an array"
		}
		return fmt.Sprintf("%q", v.String())
	case string:
		return "a string"
	case float64, json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", tok)
}
