package client

import (
	"encoding/json"
	"strings"
	"time"
)

// unwrapData peels a {"data": ...} envelope off a response body. Anything
// else (bare array, bare object) passes through untouched.
func unwrapData(body []byte) json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return body
	}
	if data, ok := envelope["data"]; ok && len(data) > 0 && string(data) != "null" {
		return data
	}
	return body
}

// decodeDoubts accepts the three shapes the backend has shipped over time:
// a bare array, an object wrapping the array in "data", or a single object.
func decodeDoubts(body []byte) ([]Doubt, error) {
	payload := unwrapData(body)

	var rawList []map[string]json.RawMessage
	if err := json.Unmarshal(payload, &rawList); err == nil {
		doubts := make([]Doubt, 0, len(rawList))
		for _, raw := range rawList {
			doubts = append(doubts, normalizeDoubt(raw))
		}
		return doubts, nil
	}

	doubt, err := decodeDoubt(body)
	if err != nil {
		return nil, err
	}
	return []Doubt{*doubt}, nil
}

func decodeDoubt(body []byte) (*Doubt, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(unwrapData(body), &raw); err != nil {
		return nil, err
	}
	doubt := normalizeDoubt(raw)
	return &doubt, nil
}

// normalizeDoubt maps one raw record onto the canonical Doubt, accepting
// camelCase or snake_case keys and re-deriving status from answer presence
// when the field is missing.
func normalizeDoubt(raw map[string]json.RawMessage) Doubt {
	doubt := Doubt{
		ID:         stringField(raw, "id"),
		Subject:    stringField(raw, "subject"),
		CourseCode: stringField(raw, "courseCode", "course_code"),
		Teacher:    stringField(raw, "teacher"),
		Question:   stringField(raw, "question"),
		Answer:     stringField(raw, "answer"),
		Status:     stringField(raw, "status"),
		CreatedAt:  timeField(raw, "createdAt", "created_at", "timestamp"),
		AnsweredAt: timeField(raw, "answeredAt", "answered_at"),
	}

	if doubt.Status == "" {
		if doubt.Answer != "" {
			doubt.Status = "Answered"
		} else {
			doubt.Status = "Pending"
		}
	}
	return doubt
}

// stringField returns the first present key, stringifying numeric ids.
func stringField(raw map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || string(value) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(value, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

func timeField(raw map[string]json.RawMessage, keys ...string) time.Time {
	if s := stringField(raw, keys...); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FilterOptions re-applies the filters client-side even when the server
// already filtered — the defensive double filter the pages perform. Empty
// fields match everything; Status compares case-insensitively because older
// responses used lower-case status values.
type FilterOptions struct {
	Subject string
	Status  string
	Teacher string
}

func Filter(doubts []Doubt, opts FilterOptions) []Doubt {
	filtered := make([]Doubt, 0, len(doubts))
	for _, doubt := range doubts {
		if opts.Subject != "" && doubt.Subject != opts.Subject {
			continue
		}
		if opts.Status != "" && !strings.EqualFold(doubt.Status, opts.Status) {
			continue
		}
		if opts.Teacher != "" && doubt.Teacher != opts.Teacher {
			continue
		}
		filtered = append(filtered, doubt)
	}
	return filtered
}
