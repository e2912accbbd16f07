package oasmodel

import json "github.com/segmentio/encoding/json"

func (p *PathItem) MarshalJSON() ([]byte, error) {
	type alias PathItem
	return mergeExtraJSON((*alias)(p), p.Extra)
}

func (p *PathItem) UnmarshalJSON(data []byte) error {
	type alias PathItem
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

func (o *Operation) MarshalJSON() ([]byte, error) {
	type alias Operation
	return mergeExtraJSON((*alias)(o), o.Extra)
}

func (o *Operation) UnmarshalJSON(data []byte) error {
	type alias Operation
	if err := json.Unmarshal(data, (*alias)(o)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	o.Extra = extra
	return nil
}
