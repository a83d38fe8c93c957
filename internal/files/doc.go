// Package files discovers board export files on disk.
package files
