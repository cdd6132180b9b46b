package engine

import (
	"fmt"
	"strconv"

	"vosummary/pkg/schema"
)

// VOData aggregates VO records and the catalogs they resolve against.
// Both catalogs are injected at construction and treated as read-only
// for the life of the run; registration of VOs is append-only.
type VOData struct {
	contactsTable   *schema.Mapping
	reportingGroups *schema.Mapping
	vos             []*schema.Mapping
}

// ExpandError reports a VO record that failed expansion. It carries
// the raw record so callers can dump it for diagnosis; a partial or
// silently dropped VO in the published feed is worse than a failed
// build, so the whole run stops here.
type ExpandError struct {
	VOName string
	Record *schema.Mapping
	Err    error
}

func (e *ExpandError) Error() string {
	return fmt.Sprintf("expanding VO %q: %v", e.VOName, e.Err)
}

func (e *ExpandError) Unwrap() error {
	return e.Err
}

// NewVOData creates a VOData with the given catalogs. A nil contacts
// table means contact enrichment never triggers.
func NewVOData(contactsTable, reportingGroups *schema.Mapping) *VOData {
	if contactsTable == nil {
		contactsTable = schema.NewMapping()
	}
	if reportingGroups == nil {
		reportingGroups = schema.NewMapping()
	}
	return &VOData{
		contactsTable:   contactsTable,
		reportingGroups: reportingGroups,
	}
}

// AddVO registers a VO record. Registration order is output order.
func (d *VOData) AddVO(vo *schema.Mapping) {
	d.vos = append(d.vos, vo)
}

// GetTree expands every registered VO and assembles the document root
// with its namespace attributes. A VO that fails to expand aborts the
// whole tree with an *ExpandError.
func (d *VOData) GetTree(authorized bool) (*schema.Mapping, error) {
	expanded := make([]any, 0, len(d.vos))
	for _, vo := range d.vos {
		out, err := d.expandVO(authorized, vo)
		if err != nil {
			return nil, &ExpandError{VOName: vo.String("Name"), Record: vo, Err: err}
		}
		expanded = append(expanded, out)
	}

	return schema.Pairs("VOSummary", schema.Pairs(
		"@xmlns:xsi", schema.XSINamespace,
		"@xsi:schemaLocation", schema.VOSummarySchemaURL,
		"VO", expanded,
	)), nil
}

// expandVO normalizes one VO record into its schema-ordered form. It
// operates on a shallow copy; the caller's record is never mutated.
func (d *VOData) expandVO(authorized bool, vo *schema.Mapping) (*schema.Mapping, error) {
	vo = vo.Copy()

	if schema.IsNull(vo, "Contacts") {
		vo.Set("ContactTypes", nil)
	} else {
		contacts, ok := vo.Value("Contacts").(*schema.Mapping)
		if !ok {
			return nil, fmt.Errorf("Contacts: expected a mapping, got %T", vo.Value("Contacts"))
		}
		contactTypes, err := d.expandContactTypes(contacts, authorized)
		if err != nil {
			return nil, err
		}
		vo.Set("ContactTypes", contactTypes)
	}
	vo.Delete("Contacts")

	if schema.IsNull(vo, "ReportingGroups") {
		vo.Set("ReportingGroups", nil)
	} else {
		groups, err := ExpandReportingGroups(vo.ChildList("ReportingGroups"), d.reportingGroups)
		if err != nil {
			return nil, err
		}
		vo.Set("ReportingGroups", groups)
	}

	if schema.IsNull(vo, "OASIS") {
		vo.Set("OASIS", nil)
	} else {
		block, ok := vo.Value("OASIS").(*schema.Mapping)
		if !ok {
			return nil, fmt.Errorf("OASIS: expected a mapping, got %T", vo.Value("OASIS"))
		}
		oasis := schema.NewMapping()
		useOASIS := false
		if v, present := block.Get("UseOASIS"); present {
			if b, ok := v.(bool); ok {
				useOASIS = b
			}
		}
		oasis.Set("UseOASIS", useOASIS)
		if schema.IsNull(block, "Managers") {
			oasis.Set("Managers", nil)
		} else {
			managers, ok := block.Value("Managers").(*schema.Mapping)
			if !ok {
				return nil, fmt.Errorf("OASIS.Managers: expected a mapping, got %T", block.Value("Managers"))
			}
			expanded, err := ExpandOASISManagers(managers)
			if err != nil {
				return nil, err
			}
			oasis.Set("Managers", expanded)
		}
		if schema.IsNull(block, "OASISRepoURLs") {
			oasis.Set("OASISRepoURLs", nil)
		} else {
			oasis.Set("OASISRepoURLs", schema.Pairs("URL", block.ChildList("OASISRepoURLs")))
		}
		vo.Set("OASIS", oasis)
	}

	if schema.IsNull(vo, "FieldsOfScience") {
		vo.Set("FieldsOfScience", nil)
	} else {
		fos, ok := vo.Value("FieldsOfScience").(*schema.Mapping)
		if !ok {
			return nil, fmt.Errorf("FieldsOfScience: expected a mapping, got %T", vo.Value("FieldsOfScience"))
		}
		expanded := ExpandFieldsOfScience(fos)
		if expanded == nil {
			vo.Set("FieldsOfScience", nil)
		} else {
			vo.Set("FieldsOfScience", expanded)
		}
	}

	if schema.IsNull(vo, "ParentVO") {
		vo.Set("ParentVO", nil)
	} else {
		parent, ok := vo.Value("ParentVO").(*schema.Mapping)
		if !ok {
			return nil, fmt.Errorf("ParentVO: expected a mapping, got %T", vo.Value("ParentVO"))
		}
		ordered := schema.NewMapping()
		for _, field := range schema.ParentVOFieldOrder {
			if v, present := parent.Get(field); present {
				ordered.Set(field, v)
			}
		}
		vo.Set("ParentVO", ordered)
	}

	for _, key := range schema.VOURLFields {
		if !vo.Has(key) {
			vo.Set(key, nil)
		}
	}

	// Rebuild in the literal schema order. Fields forced above are
	// always present; anything else that was absent stays absent, and
	// fields outside the schema are dropped.
	ordered := schema.NewMapping()
	for _, field := range schema.VOFieldOrder {
		if v, present := vo.Get(field); present {
			ordered.Set(field, v)
		}
	}
	return ordered, nil
}

// expandContactTypes reshapes a VO's contact-type buckets into
// {"ContactType": [{"Type": t, "Contacts": {"Contact": [...]}}, ...]}.
// Contact details beyond the name are merged in only for authorized
// output, and only when the contact's ID resolves in the contacts
// table; Email is mandatory in a table entry, Phone and SMS default to
// empty strings.
func (d *VOData) expandContactTypes(voContacts *schema.Mapping, authorized bool) (*schema.Mapping, error) {
	contactTypes := make([]any, 0, voContacts.Len())

	for _, contactType := range voContacts.Keys() {
		list, ok := voContacts.Value(contactType).([]any)
		if !ok {
			return nil, fmt.Errorf("contact type %q: expected a list, got %T", contactType, voContacts.Value(contactType))
		}

		contactData := make([]any, 0, len(list))
		for i, item := range list {
			contact, ok := item.(*schema.Mapping)
			if !ok {
				return nil, fmt.Errorf("contact type %q: contact %d: expected a mapping, got %T", contactType, i, item)
			}
			name, present := contact.Get("Name")
			if !present {
				return nil, fmt.Errorf("contact type %q: contact %d: missing Name", contactType, i)
			}
			newContact := schema.Pairs("Name", name)

			if authorized {
				if id, ok := scalarKey(contact.Value("ID")); ok && d.contactsTable.Has(id) {
					entry, ok := d.contactsTable.Value(id).(*schema.Mapping)
					if !ok {
						return nil, fmt.Errorf("contacts table entry %q: expected a mapping, got %T", id, d.contactsTable.Value(id))
					}
					email, present := entry.Get("Email")
					if !present {
						return nil, fmt.Errorf("contacts table entry %q: missing Email", id)
					}
					newContact.Set("Email", email)
					newContact.Set("Phone", stringOrEmpty(entry, "Phone"))
					newContact.Set("SMSAddress", stringOrEmpty(entry, "SMS"))
				}
			}
			contactData = append(contactData, newContact)
		}

		contactTypes = append(contactTypes, schema.Pairs(
			"Type", contactType,
			"Contacts", schema.Pairs("Contact", contactData),
		))
	}

	return schema.Pairs("ContactType", contactTypes), nil
}

// scalarKey renders a scalar contact ID as a table key. YAML may hand
// back an unquoted numeric ID as an int.
func scalarKey(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int:
		return strconv.Itoa(t), true
	}
	return "", false
}

// stringOrEmpty returns the string under key, defaulting to "".
func stringOrEmpty(m *schema.Mapping, key string) any {
	if v, present := m.Get(key); present && v != nil {
		return v
	}
	return ""
}
