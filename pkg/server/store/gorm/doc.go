// Package gorm implements the store interfaces using GORM.
package gorm
