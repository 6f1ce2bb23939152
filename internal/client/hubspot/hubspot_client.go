package hubspot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pasevin/hubspot-properties-import/internal/models"
)

type HubSpotClient struct {
	baseUrl    string
	token      string
	httpClient *http.Client
}

func NewHubSpotClient(baseUrl, token string) *HubSpotClient {
	return &HubSpotClient{
		baseUrl:    baseUrl,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// apiError turns a non-2xx response into an error, preferring the message
// from the HubSpot error envelope when the body carries one.
func apiError(statusCode int, body []byte) error {
	var hubspotErr HubSpotError
	if err := json.Unmarshal(body, &hubspotErr); err == nil && hubspotErr.Message != "" {
		return fmt.Errorf("HubSpot error: %s", hubspotErr.Message)
	}
	return fmt.Errorf("API error status: %d", statusCode)
}

// toPropertyRequest builds the write payload for a definition. The serialized
// option list is deserialized here, so a malformed list fails before any
// request is issued.
func toPropertyRequest(def models.PropertyDefinition) (PropertyRequest, error) {
	var options []HubSpotOption
	if strings.TrimSpace(def.Options) != "" {
		if err := json.Unmarshal([]byte(def.Options), &options); err != nil {
			return PropertyRequest{}, fmt.Errorf("parse options for %q: %w", def.Name, err)
		}
	}

	return PropertyRequest{
		Name:            def.Name,
		Label:           def.Label,
		Description:     def.Description,
		GroupName:       def.GroupName,
		Type:            string(def.Type),
		FieldType:       string(def.FieldType),
		FormField:       def.FieldType == models.FieldTypeText,
		ReadOnlyValue:   def.ReadOnlyValue,
		Calculated:      def.Calculated,
		ExternalOptions: def.ExternalOptions,
		Options:         options,
	}, nil
}

func toPropertyDefinition(p HubSpotProperty) models.PropertyDefinition {
	options := ""
	if len(p.Options) > 0 {
		raw, _ := json.Marshal(p.Options)
		options = string(raw)
	}

	return models.PropertyDefinition{
		Name:            p.Name,
		Label:           p.Label,
		Type:            models.PropertyType(p.Type),
		FieldType:       models.FieldType(p.FieldType),
		Description:     p.Description,
		GroupName:       p.GroupName,
		Options:         options,
		ReadOnlyValue:   p.ReadOnlyValue,
		Calculated:      p.Calculated,
		ExternalOptions: p.ExternalOptions,
		Deleted:         p.Deleted,
		HubspotDefined:  p.HubspotDefined,
	}
}

func (c *HubSpotClient) GetGroups() ([]models.PropertyGroup, error) {
	req, err := http.NewRequest("GET", c.baseUrl+"/properties/v1/contacts/groups", nil)
	if err != nil {
		return nil, fmt.Errorf("build request (hubspot): %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get groups (hubspot): %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body (hubspot): %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var hubspotGroups []HubSpotGroup
	if err := json.Unmarshal(body, &hubspotGroups); err != nil {
		return nil, fmt.Errorf("parse groups (hubspot): %w", err)
	}

	groups := make([]models.PropertyGroup, len(hubspotGroups))
	for i, g := range hubspotGroups {
		groups[i] = models.PropertyGroup{Name: g.Name, DisplayName: g.DisplayName}
	}
	return groups, nil
}

func (c *HubSpotClient) CreateGroup(group models.PropertyGroup) (*models.PropertyGroup, error) {
	reqBody := CreateGroupRequest{Name: group.Name, DisplayName: group.DisplayName}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal create group request (hubspot): %w", err)
	}

	req, err := http.NewRequest("POST", c.baseUrl+"/properties/v1/contacts/groups", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build request (hubspot): %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create group (hubspot): %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body (hubspot): %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, responseBody)
	}

	var created HubSpotGroup
	if err := json.Unmarshal(responseBody, &created); err != nil {
		return nil, fmt.Errorf("parse create group response (hubspot): %w", err)
	}

	return &models.PropertyGroup{Name: created.Name, DisplayName: created.DisplayName}, nil
}

func (c *HubSpotClient) DeleteGroup(name string) error {
	req, err := http.NewRequest("DELETE", c.baseUrl+"/properties/v1/contacts/groups/named/"+url.PathEscape(name), nil)
	if err != nil {
		return fmt.Errorf("build request (hubspot): %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete group (hubspot): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		errorBody, _ := io.ReadAll(resp.Body)
		return apiError(resp.StatusCode, errorBody)
	}
	return nil
}

func (c *HubSpotClient) listProperties() ([]HubSpotProperty, error) {
	req, err := http.NewRequest("GET", c.baseUrl+"/properties/v1/contacts/properties", nil)
	if err != nil {
		return nil, fmt.Errorf("build request (hubspot): %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get properties (hubspot): %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body (hubspot): %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var properties []HubSpotProperty
	if err := json.Unmarshal(body, &properties); err != nil {
		return nil, fmt.Errorf("parse properties (hubspot): %w", err)
	}
	return properties, nil
}

func (c *HubSpotClient) GetProperties() ([]models.PropertyDefinition, error) {
	properties, err := c.listProperties()
	if err != nil {
		return nil, err
	}

	defs := make([]models.PropertyDefinition, 0, len(properties))
	for _, p := range properties {
		if p.HubspotDefined {
			continue
		}
		defs = append(defs, toPropertyDefinition(p))
	}
	return defs, nil
}

func (c *HubSpotClient) GetAllProperties() ([]models.PropertyDefinition, error) {
	properties, err := c.listProperties()
	if err != nil {
		return nil, err
	}

	defs := make([]models.PropertyDefinition, len(properties))
	for i, p := range properties {
		defs[i] = toPropertyDefinition(p)
	}
	return defs, nil
}

func (c *HubSpotClient) GetProperty(name string) (*models.PropertyDefinition, error) {
	req, err := http.NewRequest("GET", c.baseUrl+"/properties/v1/contacts/properties/named/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("build request (hubspot): %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get property %q (hubspot): %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body (hubspot): %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var property HubSpotProperty
	if err := json.Unmarshal(body, &property); err != nil {
		return nil, fmt.Errorf("parse property response (hubspot): %w", err)
	}

	def := toPropertyDefinition(property)
	return &def, nil
}

func (c *HubSpotClient) CreateProperty(def models.PropertyDefinition) (*models.PropertyDefinition, error) {
	reqBody, err := toPropertyRequest(def)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal create property request (hubspot): %w", err)
	}

	req, err := http.NewRequest("POST", c.baseUrl+"/properties/v1/contacts/properties", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build request (hubspot): %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create property (hubspot): %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body (hubspot): %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, responseBody)
	}

	var created HubSpotProperty
	if err := json.Unmarshal(responseBody, &created); err != nil {
		return nil, fmt.Errorf("parse create property response (hubspot): %w", err)
	}

	out := toPropertyDefinition(created)
	return &out, nil
}

// UpdateProperty replaces the remote definition wholesale; fields left empty
// on the definition are cleared remotely, not preserved.
func (c *HubSpotClient) UpdateProperty(def models.PropertyDefinition) (*models.PropertyDefinition, error) {
	reqBody, err := toPropertyRequest(def)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal update property request (hubspot): %w", err)
	}

	req, err := http.NewRequest("PUT", c.baseUrl+"/properties/v1/contacts/properties/named/"+url.PathEscape(def.Name), bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build request (hubspot): %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("update property (hubspot): %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body (hubspot): %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, responseBody)
	}

	var updated HubSpotProperty
	if err := json.Unmarshal(responseBody, &updated); err != nil {
		return nil, fmt.Errorf("parse update property response (hubspot): %w", err)
	}

	out := toPropertyDefinition(updated)
	return &out, nil
}

func (c *HubSpotClient) DeleteProperty(name string) error {
	req, err := http.NewRequest("DELETE", c.baseUrl+"/properties/v1/contacts/properties/named/"+url.PathEscape(name), nil)
	if err != nil {
		return fmt.Errorf("build request (hubspot): %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete property %q (hubspot): %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		errorBody, _ := io.ReadAll(resp.Body)
		return apiError(resp.StatusCode, errorBody)
	}
	return nil
}
