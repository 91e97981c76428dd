// Package store defines the storage interfaces used by the API endpoints.
package store
