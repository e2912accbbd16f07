package oasmodel

import json "github.com/segmentio/encoding/json"

func (p *Parameter) MarshalJSON() ([]byte, error) {
	type alias Parameter
	return mergeExtraJSON((*alias)(p), p.Extra)
}

func (p *Parameter) UnmarshalJSON(data []byte) error {
	type alias Parameter
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}

func (rb *RequestBody) MarshalJSON() ([]byte, error) {
	type alias RequestBody
	return mergeExtraJSON((*alias)(rb), rb.Extra)
}

func (rb *RequestBody) UnmarshalJSON(data []byte) error {
	type alias RequestBody
	if err := json.Unmarshal(data, (*alias)(rb)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	rb.Extra = extra
	return nil
}

func (h *Header) MarshalJSON() ([]byte, error) {
	type alias Header
	return mergeExtraJSON((*alias)(h), h.Extra)
}

func (h *Header) UnmarshalJSON(data []byte) error {
	type alias Header
	if err := json.Unmarshal(data, (*alias)(h)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	h.Extra = extra
	return nil
}

func (mt *MediaType) MarshalJSON() ([]byte, error) {
	type alias MediaType
	return mergeExtraJSON((*alias)(mt), mt.Extra)
}

func (mt *MediaType) UnmarshalJSON(data []byte) error {
	type alias MediaType
	if err := json.Unmarshal(data, (*alias)(mt)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	mt.Extra = extra
	return nil
}

func (enc *Encoding) MarshalJSON() ([]byte, error) {
	type alias Encoding
	return mergeExtraJSON((*alias)(enc), enc.Extra)
}

func (enc *Encoding) UnmarshalJSON(data []byte) error {
	type alias Encoding
	if err := json.Unmarshal(data, (*alias)(enc)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	enc.Extra = extra
	return nil
}
