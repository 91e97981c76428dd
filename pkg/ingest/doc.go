// Package ingest fetches OpenAQ measurements and loads them into PostgreSQL.
package ingest
