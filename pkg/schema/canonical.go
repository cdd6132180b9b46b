package schema

// Schema identity advertised on the document root. Both values are a
// contract with feed consumers and must be reproduced verbatim.
const (
	XSINamespace       = "http://www.w3.org/2001/XMLSchema-instance"
	VOSummarySchemaURL = "https://my.opensciencegrid.org/schema/vosummary.xsd"
)

// VOFieldOrder is the fixed element sequence of a VO record in the
// vosummary schema. The assembler copies fields in this literal order;
// the source mapping's natural order is never trusted to encode it.
var VOFieldOrder = []string{
	"ID",
	"Name",
	"LongName",
	"CertificateOnly",
	"PrimaryURL",
	"MembershipServicesURL",
	"PurposeURL",
	"SupportURL",
	"AppDescription",
	"Community",
	"FieldsOfScience",
	"ParentVO",
	"ReportingGroups",
	"Active",
	"Disable",
	"ContactTypes",
	"OASIS",
}

// ParentVOFieldOrder is the element sequence of a ParentVO sub-record.
var ParentVOFieldOrder = []string{"ID", "Name"}

// ReportingGroupFieldOrder is the element sequence of an expanded
// reporting-group entry.
var ReportingGroupFieldOrder = []string{"Name", "FQANs", "Contacts"}

// ManagerFieldOrder is the element sequence of an expanded OASIS
// manager entry. ContactID is optional and skipped when absent.
var ManagerFieldOrder = []string{"ContactID", "Name", "DNs"}

// VOURLFields are the URL elements every output VO record carries;
// they surface as explicit nulls when missing from the source.
var VOURLFields = []string{
	"MembershipServicesURL",
	"PrimaryURL",
	"PurposeURL",
	"SupportURL",
}
