package models

type Team struct {
	Name  string `json:"name" yaml:"name"`
	Logo  string `json:"logo,omitempty" yaml:"logo"`
	Color string `json:"color,omitempty" yaml:"color"`
}
