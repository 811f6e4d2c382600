package usecase

import (
	"fmt"

	"hypermedia-record-api/internal/record"
)

// systemManaged fields are assigned by the store, never taken from a body.
func systemManaged(field string) bool {
	switch field {
	case record.FieldID, record.FieldDateCreated, record.FieldDateUpdated:
		return true
	}
	return false
}

// applyDefaults fills absent or empty fields that have declared defaults.
func (uc *implUseCase) applyDefaults(item record.Record) record.Record {
	out := item.Clone()
	for field, value := range uc.schema.Defs {
		if out[field] == "" {
			out[field] = value
		}
	}
	return out
}

// checkRequired verifies every required client-writable field is present.
func (uc *implUseCase) checkRequired(item record.Record) error {
	for _, field := range uc.schema.Reqd {
		if systemManaged(field) {
			continue
		}
		if item[field] == "" {
			return record.BadRequest("Invalid record", fmt.Sprintf("missing required field [%s]", field))
		}
	}
	return nil
}

// checkEnums verifies every present enumerated field holds a legal value.
func (uc *implUseCase) checkEnums(item record.Record) error {
	for field, legal := range uc.schema.Enums {
		value, ok := item[field]
		if !ok || value == "" {
			continue
		}
		found := false
		for _, v := range legal {
			if v == value {
				found = true
				break
			}
		}
		if !found {
			return record.BadRequest("Invalid record", fmt.Sprintf("invalid value [%s] for field [%s]", value, field))
		}
	}
	return nil
}

// setProps keeps only the schema's client-writable properties.
func (uc *implUseCase) setProps(item record.Record) record.Record {
	out := record.Record{}
	for _, p := range uc.schema.Props {
		if systemManaged(p) {
			continue
		}
		if v, ok := item[p]; ok {
			out[p] = v
		}
	}
	return out
}

// validate runs the full write-path pipeline: defaults, required, enums,
// known-props projection.
func (uc *implUseCase) validate(item record.Record) (record.Record, error) {
	out := uc.applyDefaults(item)
	if err := uc.checkRequired(out); err != nil {
		return nil, err
	}
	if err := uc.checkEnums(out); err != nil {
		return nil, err
	}
	return uc.setProps(out), nil
}
