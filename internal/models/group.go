package models

// PropertyGroup is a named collection that property definitions reference
// for organizational display. Name is the unique key; nothing else is read
// back from the API in this workflow.
type PropertyGroup struct {
	Name        string
	DisplayName string
}
