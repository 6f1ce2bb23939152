package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyDefinitionFromRow(t *testing.T) {
	row := PropertyRow{
		InternalName:    "lead_score",
		Name:            "Lead Score",
		Type:            "number",
		Description:     "Synthetic score",
		GroupName:       "leadinfo",
		FormField:       "true",
		Options:         `[{"label":"A","value":"a"}]`,
		ReadOnlyValue:   "false",
		Calculated:      "true",
		ExternalOptions: "false",
		Deleted:         "false",
		HubspotDefined:  "false",
	}

	def, err := PropertyDefinitionFromRow(row)
	assert.NoError(t, err)
	assert.Equal(t, "lead_score", def.Name)
	assert.Equal(t, "Lead Score", def.Label)
	assert.Equal(t, PropertyTypeNumber, def.Type)
	assert.Equal(t, FieldTypeText, def.FieldType)
	assert.Equal(t, "leadinfo", def.GroupName)
	assert.Equal(t, `[{"label":"A","value":"a"}]`, def.Options)
	assert.True(t, def.Calculated)
	assert.False(t, def.ReadOnlyValue)
	assert.False(t, def.HubspotDefined)
}

func TestPropertyDefinitionFromRowFieldType(t *testing.T) {
	tests := []struct {
		name      string
		formField string
		want      FieldType
	}{
		{"form field yes", "true", FieldTypeText},
		{"form field capitalized", "TRUE", FieldTypeText},
		{"form field no", "false", FieldTypeTextarea},
		{"form field empty", "", FieldTypeTextarea},
		{"form field junk", "yes", FieldTypeTextarea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := PropertyDefinitionFromRow(PropertyRow{
				InternalName: "field",
				FormField:    tt.formField,
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, def.FieldType)
		})
	}
}

func TestPropertyDefinitionFromRowTrimsName(t *testing.T) {
	def, err := PropertyDefinitionFromRow(PropertyRow{InternalName: "  padded  "})
	assert.NoError(t, err)
	assert.Equal(t, "padded", def.Name)
}

func TestPropertyDefinitionFromRowMissingName(t *testing.T) {
	_, err := PropertyDefinitionFromRow(PropertyRow{Name: "No internal name"})
	assert.Error(t, err)

	_, err = PropertyDefinitionFromRow(PropertyRow{InternalName: "   "})
	assert.Error(t, err)
}

func TestRowFromPropertyDefinition(t *testing.T) {
	def := PropertyDefinition{
		Name:           "favorite_color",
		Label:          "Favorite color",
		Type:           PropertyTypeEnumeration,
		FieldType:      FieldTypeText,
		GroupName:      "contactinformation",
		Options:        `[{"label":"Blue","value":"blue"}]`,
		HubspotDefined: true,
	}

	row := RowFromPropertyDefinition(def)
	assert.Equal(t, "favorite_color", row.InternalName)
	assert.Equal(t, "Favorite color", row.Name)
	assert.Equal(t, "enumeration", row.Type)
	assert.Equal(t, "true", row.FormField)
	assert.Equal(t, "contactinformation", row.GroupName)
	assert.Equal(t, `[{"label":"Blue","value":"blue"}]`, row.Options)
	assert.Equal(t, "true", row.HubspotDefined)
	assert.Equal(t, "false", row.ReadOnlyValue)
}

func TestRowRoundTrip(t *testing.T) {
	def := PropertyDefinition{
		Name:          "region",
		Label:         "Region",
		Type:          PropertyTypeString,
		FieldType:     FieldTypeTextarea,
		Description:   "Sales region",
		GroupName:     "salesinfo",
		ReadOnlyValue: true,
	}

	back, err := PropertyDefinitionFromRow(RowFromPropertyDefinition(def))
	assert.NoError(t, err)
	assert.Equal(t, def, back)
}

func TestIsBuiltIn(t *testing.T) {
	assert.True(t, PropertyRow{HubspotDefined: "true"}.IsBuiltIn())
	assert.True(t, PropertyRow{HubspotDefined: "True"}.IsBuiltIn())
	assert.False(t, PropertyRow{HubspotDefined: "false"}.IsBuiltIn())
	assert.False(t, PropertyRow{}.IsBuiltIn())
}
