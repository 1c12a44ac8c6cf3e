package directive

const (
	// RuntimeInitPrefix declares classes initialized when the program starts
	RuntimeInitPrefix = "--initialize-at-run-time="
	// BuildTimeInitPrefix declares classes initialized at build time
	BuildTimeInitPrefix = "--initialize-at-build-time="
	// ReflectionConfigPrefix declares reflection configuration resources
	ReflectionConfigPrefix = "-H:ReflectionConfigurationResources"
	// ReflectionConfigName is the expected reflection configuration resource suffix
	ReflectionConfigName = "reflection-config.json"

	// Region identifies entries carrying native-image metadata
	Region = "META-INF/native-image"
	// DescriptorName is the properties descriptor holding native-image arguments
	DescriptorName = "native-image.properties"
	// ArgsProperty is the descriptor property holding the argument list
	ArgsProperty = "Args"
)

// Kind represents directive kind
type Kind string

const (
	RuntimeInit              Kind = "RUNTIME_INIT"
	BuildTimeInit            Kind = "BUILD_TIME_INIT"
	ReflectionConfigResource Kind = "REFLECTION_CONFIG_RESOURCE"
	Unrecognized             Kind = "UNRECOGNIZED"
)

// Directive represents one parsed native-image argument
type Directive struct {
	Kind       Kind     `yaml:"kind"`
	ClassNames []string `yaml:"classNames,omitempty"` // RuntimeInit only
	Resource   string   `yaml:"resource,omitempty"`   // ReflectionConfigResource only
	Raw        string   `yaml:"raw"`
}

// RuntimeInitClasses returns runtime init class names in directive order
func RuntimeInitClasses(directives []*Directive) []string {
	var result []string
	for _, directive := range directives {
		if directive.Kind == RuntimeInit {
			result = append(result, directive.ClassNames...)
		}
	}
	return result
}
