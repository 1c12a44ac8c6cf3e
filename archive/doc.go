// Package archive provides read access to packaged (jar) archives: entry
// listing, entry content and manifest attributes.
package archive
