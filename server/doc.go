// Package server exposes menu generation, parsing and export over HTTP.
//
// Routes:
//
//	GET    /health
//	POST   /api/menus                   generate a menu (JSON generator.Options)
//	GET    /api/menus/last              last generated result
//	DELETE /api/menus/last              forget the last result
//	GET    /api/menus/last/download     export the last result (?format=txt|md|json|yaml|pdf)
//	GET    /api/menus/last/qrcode       PNG QR code linking to the download (?format=, ?size=)
//	POST   /api/menus/parse             parse menu text (?mode=lines|blocks, ?normalize=true)
//	POST   /api/menus/format            format a JSON menu (?style=plain|display)
//	GET    /api/menus/schema            JSON Schema of a parsed menu
//
// The generator and parser can be replaced while serving, which is how
// configuration reloads take effect.
package server
