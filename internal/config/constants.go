package config

// SourceFileExtensions lists the extensions probed when resolving a
// module specifier and when collecting files to lint.
var SourceFileExtensions = []string{".js", ".jsx", ".mjs"}

// SourceFileExt is the default extension.
const SourceFileExt = ".js"

// ConfigFileName is the per-project configuration file looked up from
// the lint root upwards.
const ConfigFileName = ".nslint.yml"

// IndexBaseName is the file probed when a specifier resolves to a
// directory.
const IndexBaseName = "index"
