// Package model contains the database models for aqsync.
package model
