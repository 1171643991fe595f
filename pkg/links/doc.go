// Package links builds absolute URLs for project entities.
//
// Every function is a pure function of the site context and the identifiers it
// receives. A required identifier that is absent (a number <= 0 or an empty
// string) yields "", which callers treat as "no link".
package links
