package pageconv

import (
	"bytes"
	"encoding/json"
)

// Value is the payload of a field write. It is one of Text, Media or Group.
type Value interface {
	isValue()
}

// Text is a string field value.
type Text string

// Media is an attachment ID for image fields.
type Media int

// NoMedia is the absent-media sentinel written to every image field.
const NoMedia Media = 0

// SubValue is one named entry of a Group.
type SubValue struct {
	Name  string
	Value Value
}

// Group is the value of a row field: sub-field values in declaration order.
type Group []SubValue

func (Text) isValue()  {}
func (Media) isValue() {}
func (Group) isValue() {}

// Get returns the value of the named sub-field.
func (g Group) Get(name string) (Value, bool) {
	for _, sv := range g {
		if sv.Name == name {
			return sv.Value, true
		}
	}
	return nil, false
}

// Names returns the sub-field names in order.
func (g Group) Names() []string {
	names := make([]string, len(g))
	for i, sv := range g {
		names[i] = sv.Name
	}
	return names
}

// MarshalJSON encodes the group as a JSON object, keeping sub-field order.
func (g Group) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sv := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sv.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(sv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeValue decodes a JSON-encoded Value: strings become Text, integers
// become Media and objects become a Group in document order.
func DecodeValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeValue(dec)
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, Errorf(EINVALID, "invalid field value: %v", err)
	}

	switch t := tok.(type) {
	case string:
		return Text(t), nil
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return nil, Errorf(EINVALID, "invalid media ID %s", t)
		}
		return Media(n), nil
	case json.Delim:
		if t != '{' {
			break
		}
		g := Group{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, Errorf(EINVALID, "invalid field value: %v", err)
			}
			name, _ := keyTok.(string)
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			g = append(g, SubValue{Name: name, Value: v})
		}
		// Consume the closing brace.
		if _, err := dec.Token(); err != nil {
			return nil, Errorf(EINVALID, "invalid field value: %v", err)
		}
		return g, nil
	}
	return nil, Errorf(EINVALID, "unsupported field value %v", tok)
}

// FieldWrite is one (field key, value) pair produced by MapFields.
// Name is the field's logical name, kept for diagnostics.
type FieldWrite struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Value Value  `json:"value"`
}
