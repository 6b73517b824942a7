package blocks

import (
	"bytes"
	"encoding/json"
)

// MediaRef is an upload field. CMSes send either a bare URL or a populated media object.
type MediaRef struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

func (m *MediaRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*m = MediaRef{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = MediaRef{URL: s}
		return nil
	}
	type plain MediaRef
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		// ids of unpopulated relations and other shapes carry no usable URL
		*m = MediaRef{}
		return nil
	}
	*m = MediaRef(p)
	return nil
}
