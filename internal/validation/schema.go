package validation

import "sort"

type Kind int

const (
	KindText Kind = iota
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	}
	return "unknown"
}

type Field struct {
	Name     string
	Kind     Kind
	NonEmpty bool
}

// Schema is a closed description of a JSON object: every field must be
// present, no other key may appear.
type Schema []Field

func (s Schema) field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Strict checks payload against the schema.
func (s Schema) Strict(payload map[string]any) error {
	if payload == nil {
		return invalid("payload is missing")
	}

	extra := make([]string, 0)
	for key := range payload {
		if _, ok := s.field(key); !ok {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return invalid("unexpected fields %v", extra)
	}

	for _, f := range s {
		v, ok := payload[f.Name]
		if !ok {
			return invalid("missing field %q", f.Name)
		}
		if err := f.check(v); err != nil {
			return err
		}
	}
	return nil
}

func (f Field) check(v any) error {
	switch f.Kind {
	case KindText:
		s, ok := v.(string)
		if !ok {
			return invalid("field %q must be %s", f.Name, f.Kind)
		}
		if f.NonEmpty && s == "" {
			return invalid("field %q must not be empty", f.Name)
		}
	case KindInteger:
		if _, ok := asInteger(v); !ok {
			return invalid("field %q must be %s", f.Name, f.Kind)
		}
	}
	return nil
}
