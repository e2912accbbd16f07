package oasmodel

import json "github.com/segmentio/encoding/json"

// MarshalJSON flattens Document's x-* specification extensions into the
// top-level object; see mergeExtraJSON.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return mergeExtraJSON((*alias)(d), d.Extra)
}

// UnmarshalJSON collects Document's x-* specification extensions into
// Extra; see extraFieldsJSON.
func (d *Document) UnmarshalJSON(data []byte) error {
	type alias Document
	if err := json.Unmarshal(data, (*alias)(d)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	d.Extra = extra
	return nil
}

// MarshalJSON flattens Info's x-* specification extensions into the
// top-level object; see mergeExtraJSON.
func (i *Info) MarshalJSON() ([]byte, error) {
	type alias Info
	return mergeExtraJSON((*alias)(i), i.Extra)
}

// UnmarshalJSON collects Info's x-* specification extensions into Extra;
// see extraFieldsJSON.
func (i *Info) UnmarshalJSON(data []byte) error {
	type alias Info
	if err := json.Unmarshal(data, (*alias)(i)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	i.Extra = extra
	return nil
}

func (c *Contact) MarshalJSON() ([]byte, error) {
	type alias Contact
	return mergeExtraJSON((*alias)(c), c.Extra)
}

func (c *Contact) UnmarshalJSON(data []byte) error {
	type alias Contact
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

func (l *License) MarshalJSON() ([]byte, error) {
	type alias License
	return mergeExtraJSON((*alias)(l), l.Extra)
}

func (l *License) UnmarshalJSON(data []byte) error {
	type alias License
	if err := json.Unmarshal(data, (*alias)(l)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	l.Extra = extra
	return nil
}

func (e *ExternalDocs) MarshalJSON() ([]byte, error) {
	type alias ExternalDocs
	return mergeExtraJSON((*alias)(e), e.Extra)
}

func (e *ExternalDocs) UnmarshalJSON(data []byte) error {
	type alias ExternalDocs
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	e.Extra = extra
	return nil
}

func (t *Tag) MarshalJSON() ([]byte, error) {
	type alias Tag
	return mergeExtraJSON((*alias)(t), t.Extra)
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	type alias Tag
	if err := json.Unmarshal(data, (*alias)(t)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	t.Extra = extra
	return nil
}

func (s *Server) MarshalJSON() ([]byte, error) {
	type alias Server
	return mergeExtraJSON((*alias)(s), s.Extra)
}

func (s *Server) UnmarshalJSON(data []byte) error {
	type alias Server
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

func (sv *ServerVariable) MarshalJSON() ([]byte, error) {
	type alias ServerVariable
	return mergeExtraJSON((*alias)(sv), sv.Extra)
}

func (sv *ServerVariable) UnmarshalJSON(data []byte) error {
	type alias ServerVariable
	if err := json.Unmarshal(data, (*alias)(sv)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	sv.Extra = extra
	return nil
}

func (c *Components) MarshalJSON() ([]byte, error) {
	type alias Components
	return mergeExtraJSON((*alias)(c), c.Extra)
}

func (c *Components) UnmarshalJSON(data []byte) error {
	type alias Components
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

func (e *Example) MarshalJSON() ([]byte, error) {
	type alias Example
	return mergeExtraJSON((*alias)(e), e.Extra)
}

func (e *Example) UnmarshalJSON(data []byte) error {
	type alias Example
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	e.Extra = extra
	return nil
}

func (l *Link) MarshalJSON() ([]byte, error) {
	type alias Link
	return mergeExtraJSON((*alias)(l), l.Extra)
}

func (l *Link) UnmarshalJSON(data []byte) error {
	type alias Link
	if err := json.Unmarshal(data, (*alias)(l)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	l.Extra = extra
	return nil
}
