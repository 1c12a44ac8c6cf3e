package directive

import (
	"strings"

	"github.com/viant/reachability/diagnostic"
)

// Parse parses a space separated native-image argument list.
// Unrecognized or suspicious arguments are reported to sink and never fail parsing.
func Parse(args string, sink diagnostic.Sink) []*Directive {
	if sink == nil {
		sink = diagnostic.Discard
	}
	var result []*Directive
	for _, arg := range strings.Split(args, " ") {
		if arg == "" {
			continue
		}
		result = append(result, parseArg(arg, sink))
	}
	return result
}

func parseArg(arg string, sink diagnostic.Sink) *Directive {
	switch {
	case strings.HasPrefix(arg, RuntimeInitPrefix):
		return &Directive{Kind: RuntimeInit, ClassNames: splitNames(arg[len(RuntimeInitPrefix):]), Raw: arg}
	case strings.HasPrefix(arg, BuildTimeInitPrefix):
		// build time initialization is the default
		return &Directive{Kind: BuildTimeInit, Raw: arg}
	case strings.HasPrefix(arg, ReflectionConfigPrefix):
		resource := arg[len(ReflectionConfigPrefix):]
		if index := strings.Index(resource, "="); index != -1 {
			resource = resource[index+1:]
		}
		if !strings.Contains(arg, "/"+ReflectionConfigName) {
			sink.Report(&diagnostic.Diagnostic{Kind: diagnostic.UnexpectedReflectionConfig,
				Message: "unexpected name for reflection config", Value: arg})
		}
		return &Directive{Kind: ReflectionConfigResource, Resource: resource, Raw: arg}
	default:
		sink.Report(&diagnostic.Diagnostic{Kind: diagnostic.UnexpectedArgument,
			Message: "unexpected argument", Value: arg})
		return &Directive{Kind: Unrecognized, Raw: arg}
	}
}

// splitNames splits a comma separated class list the way java String.split does:
// inner empty names are kept, trailing ones are dropped, and input without a comma yields itself.
func splitNames(value string) []string {
	names := strings.Split(value, ",")
	if len(names) == 1 {
		return names
	}
	for len(names) > 0 && names[len(names)-1] == "" {
		names = names[:len(names)-1]
	}
	return names
}

// InRegion returns true if entry belongs to native-image metadata region
func InRegion(name string) bool {
	return strings.Contains(name, Region)
}

// IsDescriptor returns true for native-image properties descriptor entries
func IsDescriptor(name string) bool {
	return strings.HasSuffix(name, DescriptorName)
}

// IsReflectionConfig returns true for reflection configuration entries
func IsReflectionConfig(name string) bool {
	return strings.HasSuffix(name, ReflectionConfigName)
}
