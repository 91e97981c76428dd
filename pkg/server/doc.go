// Package server provides the aqsync HTTP query API.
package server
