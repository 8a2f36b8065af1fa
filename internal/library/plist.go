package library

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind identifies the type of a parsed plist value.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindBool
	KindDict
	KindArray
	KindDate
	KindData
)

// Value is a single parsed plist value. Only the field matching Kind is
// meaningful.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Bool  bool
	Dict  *Dict
	Array []*Value
}

type pair struct {
	key   string
	value *Value
}

// Dict is an ordered plist dictionary. Order is preserved because field
// extraction is defined as "first value after the matching key", and the
// exported library relies on that convention.
type Dict struct {
	pairs []pair
}

// Get returns the first value stored under key.
func (d *Dict) Get(key string) (*Value, bool) {
	for _, p := range d.pairs {
		if p.key == key {
			return p.value, true
		}
	}
	return nil, false
}

// Has reports whether key is present at all. Flags like Compilation and
// Folder are signalled by key presence in the exported library.
func (d *Dict) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns all keys in document order.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.pairs))
	for i, p := range d.pairs {
		keys[i] = p.key
	}
	return keys
}

// Len returns the number of key/value pairs.
func (d *Dict) Len() int {
	return len(d.pairs)
}

// ParseDict parses a standalone <dict> fragment, for callers holding a
// piece of an export rather than a whole document.
func ParseDict(r io.Reader) (*Dict, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("plist: no <dict> element found")
			}
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "dict" {
			return nil, fmt.Errorf("plist: unexpected element <%s>, want <dict>", start.Name.Local)
		}
		v, err := parseDict(dec)
		if err != nil {
			return nil, err
		}
		return v.Dict, nil
	}
}

// parsePlist reads a plist document and returns its root value.
func parsePlist(r io.Reader) (*Value, error) {
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("plist: no <plist> element found")
			}
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "plist" {
			return nil, fmt.Errorf("plist: unexpected root element <%s>", start.Name.Local)
		}
		break
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return parseValue(dec, t)
		case xml.EndElement:
			return nil, fmt.Errorf("plist: empty <plist> element")
		}
	}
}

func parseValue(dec *xml.Decoder, start xml.StartElement) (*Value, error) {
	switch start.Name.Local {
	case "dict":
		return parseDict(dec)
	case "array":
		return parseArray(dec)
	case "string":
		text, err := readText(dec)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindString, Str: text}, nil
	case "integer":
		text, err := readText(dec)
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("plist: bad integer %q: %w", text, err)
		}
		return &Value{Kind: KindInteger, Int: n}, nil
	case "true":
		if err := dec.Skip(); err != nil {
			return nil, err
		}
		return &Value{Kind: KindBool, Bool: true}, nil
	case "false":
		if err := dec.Skip(); err != nil {
			return nil, err
		}
		return &Value{Kind: KindBool, Bool: false}, nil
	case "date":
		text, err := readText(dec)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindDate, Str: strings.TrimSpace(text)}, nil
	case "data":
		text, err := readText(dec)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindData, Str: strings.TrimSpace(text)}, nil
	default:
		// Unknown element types are carried as their text content so a newer
		// export format degrades instead of failing the whole parse.
		text, err := readText(dec)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindString, Str: text}, nil
	}
}

func parseDict(dec *xml.Decoder) (*Value, error) {
	d := &Dict{}
	var pendingKey string
	var haveKey bool

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "key" {
				text, err := readText(dec)
				if err != nil {
					return nil, err
				}
				pendingKey = text
				haveKey = true
				continue
			}
			if !haveKey {
				return nil, fmt.Errorf("plist: value <%s> without preceding <key>", t.Name.Local)
			}
			v, err := parseValue(dec, t)
			if err != nil {
				return nil, err
			}
			d.pairs = append(d.pairs, pair{key: pendingKey, value: v})
			haveKey = false
		case xml.EndElement:
			return &Value{Kind: KindDict, Dict: d}, nil
		}
	}
}

func parseArray(dec *xml.Decoder) (*Value, error) {
	var items []*Value
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			v, err := parseValue(dec, t)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		case xml.EndElement:
			return &Value{Kind: KindArray, Array: items}, nil
		}
	}
}

// readText consumes tokens up to the current element's end tag and
// returns the accumulated character data.
func readText(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			return sb.String(), nil
		case xml.StartElement:
			// Nested markup inside a scalar element is malformed.
			return "", fmt.Errorf("plist: unexpected <%s> inside scalar element", t.Name.Local)
		}
	}
}
