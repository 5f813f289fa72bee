// Package assets provides the default page template and stylesheet used
// when the site does not ship its own, with an optional filesystem
// override directory.
package assets
