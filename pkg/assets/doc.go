// Package assets resolves avatar images and project item icons.
package assets
