package feature

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestAccumulator_Finalize(t *testing.T) {
	tests := []struct {
		description string
		build       func(acc *Accumulator)
		expectYaml  string
	}{
		{
			description: "empty accumulator",
			build:       func(acc *Accumulator) {},
			expectYaml: `reflectiveClasses: []
reflectiveConstructors: []
reflectiveFields: []
reflectiveMethods: []
initializeAtRuntime: []`,
		},
		{
			description: "runtime init keeps order and duplicates",
			build: func(acc *Accumulator) {
				acc.AddRuntimeInit("com.Foo", "com.Bar")
				acc.AddRuntimeInit("com.Foo")
			},
			expectYaml: `reflectiveClasses: []
reflectiveConstructors: []
reflectiveFields: []
reflectiveMethods: []
initializeAtRuntime:
  - com.Foo
  - com.Bar
  - com.Foo`,
		},
		{
			description: "reflective elements",
			build: func(acc *Accumulator) {
				acc.AddReflectiveClass(&ReflectiveClass{Name: "com.Foo", AllDeclaredFields: true})
				acc.AddConstructor(&Constructor{Class: "com.Foo", ParameterTypes: []string{"java.lang.String"}})
				acc.AddField(&Field{Class: "com.Foo", Name: "bar"})
				acc.AddMethod(&Method{Class: "com.Foo", Name: "getBar"})
			},
			expectYaml: `reflectiveClasses:
  - name: com.Foo
    allDeclaredFields: true
reflectiveConstructors:
  - class: com.Foo
    parameterTypes:
      - java.lang.String
reflectiveFields:
  - class: com.Foo
    name: bar
reflectiveMethods:
  - class: com.Foo
    name: getBar
initializeAtRuntime: []`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			acc := NewAccumulator()
			tc.build(acc)
			actual := acc.Finalize()
			expect := &Feature{}
			if err := yaml.Unmarshal([]byte(tc.expectYaml), expect); !assert.Nil(t, err) {
				return
			}
			if !assert.EqualValues(t, expect, actual) {
				data, _ := yaml.Marshal(actual)
				fmt.Println("ACTUAL:", string(data))
			}
		})
	}
}

func TestAccumulator_FinalizeSnapshot(t *testing.T) {
	acc := NewAccumulator()
	acc.AddRuntimeInit("com.Foo")
	first := acc.Finalize()
	acc.AddRuntimeInit("com.Bar")
	second := acc.Finalize()

	assert.EqualValues(t, []string{"com.Foo"}, first.InitializeAtRuntime)
	assert.EqualValues(t, []string{"com.Foo", "com.Bar"}, second.InitializeAtRuntime)
	assert.True(t, NewAccumulator().Finalize().IsEmpty())
	assert.False(t, second.IsEmpty())
}

func TestFeature_String(t *testing.T) {
	acc := NewAccumulator()
	acc.AddRuntimeInit("com.Foo", "com.Bar")
	acc.AddField(&Field{Class: "com.Foo", Name: "x"})
	assert.EqualValues(t, "Feature{classes: 0, constructors: 0, fields: 1, methods: 0, initializeAtRuntime: [com.Foo, com.Bar]}",
		acc.Finalize().String())
}
