package memsource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Static errors for err113 compliance.
var (
	ErrNotAnObject = errors.New("JSON value is not an object")
)

// Document is a JSON object mirrored field-for-field from a server response.
//
// Accessors take a dotted path ("owner.email", "content.0.id"); numeric
// segments index into arrays. Missing fields yield zero values.
type Document map[string]interface{}

// ParseDocument decodes a JSON object. Numbers are kept as json.Number so
// large identifiers survive intact.
func ParseDocument(data []byte) (Document, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw interface{}

	err := decoder.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, raw)
	}

	return Document(obj), nil
}

// Get returns the value at path, or nil when any segment is missing.
func (d Document) Get(path string) interface{} {
	var current interface{} = map[string]interface{}(d)

	for _, key := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			current = node[key]
		case Document:
			current = node[key]
		case []interface{}:
			index, err := strconv.Atoi(key)
			if err != nil || index < 0 || index >= len(node) {
				return nil
			}

			current = node[index]
		default:
			return nil
		}

		if current == nil {
			return nil
		}
	}

	return current
}

// Has reports whether path resolves to a non-null value.
func (d Document) Has(path string) bool {
	return d.Get(path) != nil
}

// String returns the value at path formatted as a string.
func (d Document) String(path string) string {
	switch value := d.Get(path).(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}

// Int returns the integer at path, or zero.
func (d Document) Int(path string) int64 {
	switch value := d.Get(path).(type) {
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0
		}

		return n
	case float64:
		return int64(value)
	case string:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0
		}

		return n
	default:
		return 0
	}
}

// Bool returns the boolean at path, or false.
func (d Document) Bool(path string) bool {
	value, ok := d.Get(path).(bool)

	return ok && value
}

// Doc returns the object at path, or nil.
func (d Document) Doc(path string) Document {
	switch value := d.Get(path).(type) {
	case map[string]interface{}:
		return Document(value)
	case Document:
		return value
	default:
		return nil
	}
}

// Slice returns the array at path, or nil.
func (d Document) Slice(path string) []interface{} {
	value, _ := d.Get(path).([]interface{})

	return value
}

// Docs returns the objects of the array at path; non-object elements are skipped.
func (d Document) Docs(path string) []Document {
	items := d.Slice(path)
	if items == nil {
		return nil
	}

	docs := make([]Document, 0, len(items))

	for _, item := range items {
		if obj, ok := item.(map[string]interface{}); ok {
			docs = append(docs, Document(obj))
		}
	}

	return docs
}

// Decode copies the document into target using the target's json tags.
func (d Document) Decode(target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(map[string]interface{}(d))
	if err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	return nil
}
