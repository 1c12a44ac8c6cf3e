// Package directive parses native-image argument lists found in
// META-INF/native-image/**/native-image.properties descriptors.
//
// Only runtime initialization, build time initialization and reflection
// configuration resource arguments are recognized; everything else is
// reported as a diagnostic and otherwise ignored.
package directive
