package feature

// Accumulator collects metadata contributions across one archive graph walk.
// Order is contribution order; duplicates are kept.
type Accumulator struct {
	reflectiveClasses []*ReflectiveClass
	constructors      []*Constructor
	fields            []*Field
	methods           []*Method
	runtimeInit       []string
}

// AddRuntimeInit appends classes whose initialization is deferred to run time
func (a *Accumulator) AddRuntimeInit(names ...string) {
	a.runtimeInit = append(a.runtimeInit, names...)
}

// AddReflectiveClass appends reflective classes
func (a *Accumulator) AddReflectiveClass(classes ...*ReflectiveClass) {
	a.reflectiveClasses = append(a.reflectiveClasses, classes...)
}

// AddConstructor appends reflective constructors
func (a *Accumulator) AddConstructor(constructors ...*Constructor) {
	a.constructors = append(a.constructors, constructors...)
}

// AddField appends reflective fields
func (a *Accumulator) AddField(fields ...*Field) {
	a.fields = append(a.fields, fields...)
}

// AddMethod appends reflective methods
func (a *Accumulator) AddMethod(methods ...*Method) {
	a.methods = append(a.methods, methods...)
}

// Finalize snapshots accumulated metadata into a Feature.
// Returned slices are never nil and do not alias accumulator state.
func (a *Accumulator) Finalize() *Feature {
	return &Feature{
		ReflectiveClasses:      snapshot(a.reflectiveClasses),
		ReflectiveConstructors: snapshot(a.constructors),
		ReflectiveFields:       snapshot(a.fields),
		ReflectiveMethods:      snapshot(a.methods),
		InitializeAtRuntime:    snapshot(a.runtimeInit),
	}
}

func snapshot[T any](items []T) []T {
	result := make([]T, len(items))
	copy(result, items)
	return result
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}
