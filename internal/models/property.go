package models

import (
	"fmt"
	"strings"
)

// PropertyType is the underlying storage type of a property.
type PropertyType string

const (
	PropertyTypeString      PropertyType = "string"
	PropertyTypeNumber      PropertyType = "number"
	PropertyTypeDate        PropertyType = "date"
	PropertyTypeDatetime    PropertyType = "datetime"
	PropertyTypeEnumeration PropertyType = "enumeration"
	PropertyTypeBool        PropertyType = "bool"
)

// FieldType is the presentation widget a property is rendered with.
// Imported rows only ever derive the free-text and multi-line kinds;
// definitions read back from the API may carry any widget kind.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
)

// PropertyRow is one record of a HubSpot property export file. Column
// headers match the export format; boolean cells hold "true"/"false".
type PropertyRow struct {
	InternalName    string `csv:"Internal name"`
	Name            string `csv:"Name"`
	Type            string `csv:"Type"`
	Description     string `csv:"Description"`
	GroupName       string `csv:"Group name"`
	FormField       string `csv:"Form field"`
	Options         string `csv:"Options"`
	ReadOnlyValue   string `csv:"Read only value"`
	Calculated      string `csv:"Calculated"`
	ExternalOptions string `csv:"External options"`
	Deleted         string `csv:"Deleted"`
	HubspotDefined  string `csv:"Hubspot defined"`
}

// IsBuiltIn reports whether the row describes a property owned by HubSpot
// itself. Built-in entries are never created, mutated or deleted.
func (r PropertyRow) IsBuiltIn() bool {
	return csvBool(r.HubspotDefined)
}

// PropertyDefinition is a contact property definition. Name is the only
// identifier the API accepts for lookup, update and delete; it is immutable
// once the property exists remotely.
type PropertyDefinition struct {
	Name        string
	Label       string
	Type        PropertyType
	FieldType   FieldType
	Description string
	GroupName   string

	// Options holds the serialized choice list exactly as exported (a JSON
	// array), empty unless the property is enumerated. It is deserialized
	// right before transmission.
	Options string

	ReadOnlyValue   bool
	Calculated      bool
	ExternalOptions bool
	Deleted         bool
	HubspotDefined  bool
}

// PropertyDefinitionFromRow maps a raw export row onto the typed definition.
// The internal name is the identity and must be present; everything else is
// passed through for the remote store to validate.
func PropertyDefinitionFromRow(row PropertyRow) (PropertyDefinition, error) {
	name := strings.TrimSpace(row.InternalName)
	if name == "" {
		return PropertyDefinition{}, fmt.Errorf("row %q: missing internal name", row.Name)
	}

	fieldType := FieldTypeTextarea
	if csvBool(row.FormField) {
		fieldType = FieldTypeText
	}

	return PropertyDefinition{
		Name:            name,
		Label:           row.Name,
		Type:            PropertyType(row.Type),
		FieldType:       fieldType,
		Description:     row.Description,
		GroupName:       row.GroupName,
		Options:         strings.TrimSpace(row.Options),
		ReadOnlyValue:   csvBool(row.ReadOnlyValue),
		Calculated:      csvBool(row.Calculated),
		ExternalOptions: csvBool(row.ExternalOptions),
		Deleted:         csvBool(row.Deleted),
		HubspotDefined:  csvBool(row.HubspotDefined),
	}, nil
}

// RowFromPropertyDefinition is the export-side inverse of
// PropertyDefinitionFromRow.
func RowFromPropertyDefinition(def PropertyDefinition) PropertyRow {
	return PropertyRow{
		InternalName:    def.Name,
		Name:            def.Label,
		Type:            string(def.Type),
		Description:     def.Description,
		GroupName:       def.GroupName,
		FormField:       formatBool(def.FieldType == FieldTypeText),
		Options:         def.Options,
		ReadOnlyValue:   formatBool(def.ReadOnlyValue),
		Calculated:      formatBool(def.Calculated),
		ExternalOptions: formatBool(def.ExternalOptions),
		Deleted:         formatBool(def.Deleted),
		HubspotDefined:  formatBool(def.HubspotDefined),
	}
}

// csvBool interprets a boolean-as-string export cell. The export writes
// lowercase "true", spreadsheet round trips may capitalize it.
func csvBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
