// Package models defines the JSON shapes exchanged with the tutoring backend.
// Field tags follow the backend's Spanish field names; Go names are English.
// Update payloads use pointer fields so that only the provided values are sent.
package models
