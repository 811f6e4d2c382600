package record

// --- Record Domain Model ---

// Record is a flat field-to-value unit identified by "id" within a collection.
// Values are stored as strings; the parse boundary coerces scalars on the way in.
type Record map[string]string

// System-managed fields. Never client-supplied on create.
const (
	FieldID          = "id"
	FieldStatus      = "status"
	FieldDateCreated = "dateCreated"
	FieldDateUpdated = "dateUpdated"
)

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Project narrows the record to exactly the named fields. Missing fields are
// simply absent. An empty field list returns the record unchanged.
func (r Record) Project(fields []string) Record {
	if len(fields) == 0 {
		return r
	}
	out := make(Record, len(fields))
	for _, f := range fields {
		if v, ok := r[f]; ok {
			out[f] = v
		}
	}
	return out
}

// --- Schema ---

// Schema declares the writable shape of a collection's records: the known
// properties, which of them are required on create, enumerated legal values,
// and defaults applied when a field is absent.
type Schema struct {
	Props []string
	Reqd  []string
	Enums map[string][]string
	Defs  map[string]string
}

// DefaultSchema is the demonstrated collection's schema.
func DefaultSchema() Schema {
	return Schema{
		Props: []string{
			FieldID,
			"givenName",
			"familyName",
			"telephone",
			"email",
			FieldStatus,
			FieldDateCreated,
			FieldDateUpdated,
		},
		Reqd: []string{FieldID, "email", FieldStatus},
		Enums: map[string][]string{
			FieldStatus: {"pending", "active", "suspended", "closed"},
		},
		Defs: map[string]string{
			FieldStatus: "pending",
		},
	}
}

// --- Action Request ---

// Action names understood by the record store.
type Action string

const (
	ActionCreateCollection Action = "create-collection"
	ActionList             Action = "list"
	ActionFilter           Action = "filter"
	ActionItem             Action = "item"
	ActionAdd              Action = "add"
	ActionUpdate           Action = "update"
	ActionRemove           Action = "remove"
)

// ActionRequest is the ephemeral message carrying an intent plus data from
// the dispatcher to the store. It is the sole contract between the two: the
// store knows nothing about transport, schema validation, or representation.
type ActionRequest struct {
	Collection string
	Action     Action
	ID         string
	Item       Record
	Filter     map[string]string
	Fields     []string
}
