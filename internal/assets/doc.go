// Package assets holds the stylesheets and page templates that wrap a
// rendered preview into a standalone HTML document.
//
// A Set is any file tree laid out as
//
//	styles/{name}.css
//	templates/{name}.html
//
// The built-in Set is compiled into the binary. OpenDir opens a Set on
// disk through an os.Root, so a name can never reach outside the
// directory, symlinks included. A Resolver layers a custom Set over the
// built-in one.
package assets
