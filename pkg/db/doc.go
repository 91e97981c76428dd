// Package db provides database connection utilities.
package db
