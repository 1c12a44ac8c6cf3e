package feature

import (
	"fmt"
	"strings"
)

// ReflectiveClass represents a class that must stay reflectively accessible
type ReflectiveClass struct {
	Name                    string `yaml:"name" json:"name"`
	AllDeclaredConstructors bool   `yaml:"allDeclaredConstructors,omitempty" json:"allDeclaredConstructors,omitempty"`
	AllPublicConstructors   bool   `yaml:"allPublicConstructors,omitempty" json:"allPublicConstructors,omitempty"`
	AllDeclaredMethods      bool   `yaml:"allDeclaredMethods,omitempty" json:"allDeclaredMethods,omitempty"`
	AllPublicMethods        bool   `yaml:"allPublicMethods,omitempty" json:"allPublicMethods,omitempty"`
	AllDeclaredFields       bool   `yaml:"allDeclaredFields,omitempty" json:"allDeclaredFields,omitempty"`
	AllPublicFields         bool   `yaml:"allPublicFields,omitempty" json:"allPublicFields,omitempty"`
}

// Constructor represents a reflectively invoked constructor
type Constructor struct {
	Class          string   `yaml:"class" json:"class"`
	ParameterTypes []string `yaml:"parameterTypes,omitempty" json:"parameterTypes,omitempty"`
}

// Field represents a reflectively accessed field
type Field struct {
	Class string `yaml:"class" json:"class"`
	Name  string `yaml:"name" json:"name"`
}

// Method represents a reflectively invoked method
type Method struct {
	Class          string   `yaml:"class" json:"class"`
	Name           string   `yaml:"name" json:"name"`
	ParameterTypes []string `yaml:"parameterTypes,omitempty" json:"parameterTypes,omitempty"`
}

// Feature is the consolidated reachability metadata imported from an archive graph
type Feature struct {
	ReflectiveClasses      []*ReflectiveClass `yaml:"reflectiveClasses" json:"reflectiveClasses"`
	ReflectiveConstructors []*Constructor     `yaml:"reflectiveConstructors" json:"reflectiveConstructors"`
	ReflectiveFields       []*Field           `yaml:"reflectiveFields" json:"reflectiveFields"`
	ReflectiveMethods      []*Method          `yaml:"reflectiveMethods" json:"reflectiveMethods"`
	InitializeAtRuntime    []string           `yaml:"initializeAtRuntime" json:"initializeAtRuntime"`
}

// IsEmpty returns true if feature carries no metadata
func (f *Feature) IsEmpty() bool {
	return len(f.ReflectiveClasses) == 0 &&
		len(f.ReflectiveConstructors) == 0 &&
		len(f.ReflectiveFields) == 0 &&
		len(f.ReflectiveMethods) == 0 &&
		len(f.InitializeAtRuntime) == 0
}

// String returns a summary of the feature
func (f *Feature) String() string {
	builder := &strings.Builder{}
	builder.WriteString(fmt.Sprintf("Feature{classes: %d, constructors: %d, fields: %d, methods: %d, initializeAtRuntime: [",
		len(f.ReflectiveClasses), len(f.ReflectiveConstructors), len(f.ReflectiveFields), len(f.ReflectiveMethods)))
	builder.WriteString(strings.Join(f.InitializeAtRuntime, ", "))
	builder.WriteString("]}")
	return builder.String()
}
