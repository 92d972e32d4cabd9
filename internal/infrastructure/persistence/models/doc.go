// Package models contains GORM database models for the infrastructure layer.
// These models handle database persistence and are kept apart from the domain
// key pair so that the domain stays free of storage tags.
package models
