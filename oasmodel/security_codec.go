package oasmodel

import json "github.com/segmentio/encoding/json"

func (s *SecurityScheme) MarshalJSON() ([]byte, error) {
	type alias SecurityScheme
	return mergeExtraJSON((*alias)(s), s.Extra)
}

func (s *SecurityScheme) UnmarshalJSON(data []byte) error {
	type alias SecurityScheme
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

func (f *OAuthFlows) MarshalJSON() ([]byte, error) {
	type alias OAuthFlows
	return mergeExtraJSON((*alias)(f), f.Extra)
}

func (f *OAuthFlows) UnmarshalJSON(data []byte) error {
	type alias OAuthFlows
	if err := json.Unmarshal(data, (*alias)(f)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	f.Extra = extra
	return nil
}

func (f *OAuthFlow) MarshalJSON() ([]byte, error) {
	type alias OAuthFlow
	return mergeExtraJSON((*alias)(f), f.Extra)
}

func (f *OAuthFlow) UnmarshalJSON(data []byte) error {
	type alias OAuthFlow
	if err := json.Unmarshal(data, (*alias)(f)); err != nil {
		return err
	}
	extra, err := extraFieldsJSON(data)
	if err != nil {
		return err
	}
	f.Extra = extra
	return nil
}
