// Package model defines the insole asset record, the field-level diff used
// to materialize history entries, and small pure helpers (serial
// validation, id generation, location classification) shared by the store
// and the UI.
package model
