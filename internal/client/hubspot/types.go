package hubspot

type HubSpotError struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	CorrelationId string `json:"correlationId"`
	Category      string `json:"category"`
}

type HubSpotOption struct {
	Label        string `json:"label"`
	Value        string `json:"value"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	Hidden       bool   `json:"hidden"`
}

type HubSpotProperty struct {
	Name            string          `json:"name"`
	Label           string          `json:"label"`
	Description     string          `json:"description"`
	GroupName       string          `json:"groupName"`
	Type            string          `json:"type"`
	FieldType       string          `json:"fieldType"`
	FormField       bool            `json:"formField"`
	ReadOnlyValue   bool            `json:"readOnlyValue"`
	Calculated      bool            `json:"calculated"`
	ExternalOptions bool            `json:"externalOptions"`
	Deleted         bool            `json:"deleted"`
	HubspotDefined  bool            `json:"hubspotDefined"`
	Options         []HubSpotOption `json:"options"`
}

type HubSpotGroup struct {
	Name           string `json:"name"`
	DisplayName    string `json:"displayName"`
	DisplayOrder   int    `json:"displayOrder"`
	HubspotDefined bool   `json:"hubspotDefined"`
}

type PropertyRequest struct {
	Name            string          `json:"name"`
	Label           string          `json:"label"`
	Description     string          `json:"description,omitempty"`
	GroupName       string          `json:"groupName"`
	Type            string          `json:"type"`
	FieldType       string          `json:"fieldType"`
	FormField       bool            `json:"formField"`
	ReadOnlyValue   bool            `json:"readOnlyValue"`
	Calculated      bool            `json:"calculated"`
	ExternalOptions bool            `json:"externalOptions"`
	Options         []HubSpotOption `json:"options,omitempty"`
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}
