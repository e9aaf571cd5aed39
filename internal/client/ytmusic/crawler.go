package ytmusic

import (
	"encoding/json"
	"strconv"
	"strings"
)

// crawler is a cursor into decoded renderer JSON. It tracks the pointer
// path walked so far, so every failure reports the exact node that did not
// match expectations. Crawlers are cheap values; navigation returns new
// cursors and never mutates the underlying document.
type crawler struct {
	value any
	path  string
}

// newCrawler decodes a raw response body into a crawler positioned at the
// document root.
func newCrawler(data []byte) (*crawler, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, &DecodeError{Path: "/", Expected: "valid JSON document", Found: "malformed JSON"}
	}

	return &crawler{value: value, path: ""}, nil
}

// describeJSON names the JSON type of a decoded value for error messages.
func describeJSON(value any) string {
	switch value.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return "unknown value"
	}
}

// fail builds a DecodeError at the given pointer relative to the cursor.
func (c *crawler) fail(relative, expected, found string) *DecodeError {
	return &DecodeError{Path: c.path + relative, Expected: expected, Found: found}
}

// pointer walks a JSON pointer ("/a/b/0") relative to the cursor and
// returns the cursor at its target. Numeric segments index arrays;
// negative indices count from the end, Python style.
func (c *crawler) pointer(ptr string) (*crawler, error) {
	current := c.value
	walked := c.path

	for _, segment := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		if segment == "" {
			continue
		}

		switch node := current.(type) {
		case map[string]any:
			child, ok := node[segment]
			if !ok {
				return nil, &DecodeError{
					Path:     walked + "/" + segment,
					Expected: "object key " + strconv.Quote(segment),
					Found:    "missing key",
				}
			}

			current = child
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, &DecodeError{
					Path:     walked + "/" + segment,
					Expected: "array index",
					Found:    "non-numeric segment " + strconv.Quote(segment),
				}
			}

			if index < 0 {
				index += len(node)
			}

			if index < 0 || index >= len(node) {
				return nil, &DecodeError{
					Path:     walked + "/" + segment,
					Expected: "array index within " + strconv.Itoa(len(node)) + " elements",
					Found:    "out-of-range index",
				}
			}

			current = node[index]
		default:
			return nil, &DecodeError{
				Path:     walked + "/" + segment,
				Expected: "object or array",
				Found:    describeJSON(current),
			}
		}

		walked += "/" + segment
	}

	return &crawler{value: current, path: walked}, nil
}

// optional walks a pointer and reports whether the target exists,
// swallowing the navigation error. Used for fields the provider is
// allowed to omit.
func (c *crawler) optional(ptr string) (*crawler, bool) {
	target, err := c.pointer(ptr)
	if err != nil {
		return nil, false
	}

	return target, true
}

// str walks a pointer and returns the string at its target.
func (c *crawler) str(ptr string) (string, error) {
	target, err := c.pointer(ptr)
	if err != nil {
		return "", err
	}

	return target.asString()
}

// optionalStr walks a pointer and returns the string at its target, or nil
// when the target is absent. A present target of the wrong type is still
// a decode failure.
func (c *crawler) optionalStr(ptr string) (*string, error) {
	target, ok := c.optional(ptr)
	if !ok {
		return nil, nil
	}

	value, err := target.asString()
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// array walks a pointer and returns one cursor per element of the array at
// its target.
func (c *crawler) array(ptr string) ([]*crawler, error) {
	target, err := c.pointer(ptr)
	if err != nil {
		return nil, err
	}

	items, ok := target.value.([]any)
	if !ok {
		return nil, target.fail("", "array", describeJSON(target.value))
	}

	elements := make([]*crawler, 0, len(items))
	for i, item := range items {
		elements = append(elements, &crawler{value: item, path: target.path + "/" + strconv.Itoa(i)})
	}

	return elements, nil
}

// asString returns the cursor's value as a string.
func (c *crawler) asString() (string, error) {
	value, ok := c.value.(string)
	if !ok {
		return "", c.fail("", "string", describeJSON(c.value))
	}

	return value, nil
}

// asBool returns the cursor's value as a boolean.
func (c *crawler) asBool() (bool, error) {
	value, ok := c.value.(bool)
	if !ok {
		return false, c.fail("", "boolean", describeJSON(c.value))
	}

	return value, nil
}

// asInt returns the cursor's value as an integer. JSON numbers decode as
// float64, so the value is truncated.
func (c *crawler) asInt() (int64, error) {
	value, ok := c.value.(float64)
	if !ok {
		return 0, c.fail("", "number", describeJSON(c.value))
	}

	return int64(value), nil
}
