package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexText is a free-text persona field. Models answer with a plain string
// most of the time but sometimes with a number, a list or an object such as
// {"nostalgic": "60%"}; all of those are flattened to readable text.
type FlexText string

func (f FlexText) String() string {
	return strings.TrimSpace(string(f))
}

func (f *FlexText) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	text, err := flatten(dec)
	if err != nil {
		return fmt.Errorf("flex text: %w", err)
	}
	*f = FlexText(text)
	return nil
}

func flatten(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}

	switch v := tok.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return fmt.Sprintf("%t", v), nil
	case json.Delim:
		switch v {
		case '[':
			var parts []string
			for dec.More() {
				part, err := flatten(dec)
				if err != nil {
					return "", err
				}
				if part != "" {
					parts = append(parts, part)
				}
			}
			_, err := dec.Token()
			return strings.Join(parts, ", "), err
		case '{':
			var parts []string
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return "", err
				}
				value, err := flatten(dec)
				if err != nil {
					return "", err
				}
				parts = append(parts, fmt.Sprintf("%v: %s", keyTok, value))
			}
			_, err := dec.Token()
			return strings.Join(parts, ", "), err
		}
	}
	return "", fmt.Errorf("unexpected token %v", tok)
}
