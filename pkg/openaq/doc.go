// Package openaq is a minimal client for the OpenAQ v3 REST API.
//
// It covers the surface aqsync needs: daily sensor aggregates
// (GET /sensors/{id}/days) and location lookups (GET /locations/{id}).
package openaq
